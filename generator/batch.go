package generator

import (
	"context"
	"fmt"

	"github.com/viant/vsproj/order"
	"github.com/viant/vsproj/target"
)

// Batch represents outcome of generating a set of targets
type Batch struct {
	Order            []string // Generation order, dependencies first
	Results          []*Result
	WorkspaceURL     string
	WorkspaceWritten bool
}

// Plan returns generation order of targets: a referenced target of the same set precedes its
// referrers. References to targets outside the set impose no order. A reference that would close
// a cycle is dropped from ordering, it stays unresolved until the next generation.
func (g *Generator) Plan(targets []target.Target) ([]target.Target, error) {
	byName := make(map[string]target.Target, len(targets))
	graph := order.NewGraph()
	for _, t := range targets {
		if _, ok := byName[t.Name()]; ok {
			return nil, fmt.Errorf("%w: duplicate target name %v", target.ErrInvalidTarget, t.Name())
		}
		byName[t.Name()] = t
		graph.AddNode(t.Name())
	}
	for _, t := range targets {
		for _, name := range t.References(g.config.Platform) {
			if !graph.Has(name) {
				continue
			}
			if graph.Reaches(t.Name(), name) {
				g.logger.Warn("cyclic target reference ignored for ordering", "name", t.Name(), "reference", name)
				continue
			}
			if err := graph.AddEdge(name, t.Name()); err != nil {
				return nil, err
			}
		}
	}
	names, err := graph.Sort()
	if err != nil {
		return nil, err
	}
	result := make([]target.Target, 0, len(names))
	for _, name := range names {
		result = append(result, byName[name])
	}
	return result, nil
}

// GenerateAll generates targets in dependency order, then the workspace at workspaceURL
// aggregating every target in the given order. An empty workspaceURL skips the workspace.
func (g *Generator) GenerateAll(ctx context.Context, targets []target.Target, workspaceURL string) (*Batch, error) {
	planned, err := g.Plan(targets)
	if err != nil {
		return nil, err
	}
	batch := &Batch{WorkspaceURL: workspaceURL}
	for _, t := range planned {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		result, err := g.Generate(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %v: %w", t.Name(), err)
		}
		batch.Order = append(batch.Order, t.Name())
		batch.Results = append(batch.Results, result)
	}
	if workspaceURL == "" {
		return batch, nil
	}
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name())
	}
	if batch.WorkspaceWritten, err = g.GenerateWorkspace(ctx, workspaceURL, names); err != nil {
		return nil, fmt.Errorf("failed to generate workspace %v: %w", workspaceURL, err)
	}
	return batch, nil
}
