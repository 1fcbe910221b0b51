// Package order computes generation order of targets, so a dependency artifact exists
// before any dependent target resolves references to it.
package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCycle reports cyclic dependencies
var ErrCycle = errors.New("cycle detected")

// Graph represents target dependencies
type Graph struct {
	nodes   map[string]bool
	edges   map[string][]string // dependency -> dependents
	parents map[string][]string // dependent -> dependencies
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		nodes:   map[string]bool{},
		edges:   map[string][]string{},
		parents: map[string][]string{},
	}
}

// AddNode adds a target
func (g *Graph) AddNode(id string) {
	g.nodes[id] = true
}

// AddEdge records that dependent depends on dependency, both must be known nodes
func (g *Graph) AddEdge(dependency, dependent string) error {
	if !g.nodes[dependency] {
		return fmt.Errorf("dependency node %q does not exist", dependency)
	}
	if !g.nodes[dependent] {
		return fmt.Errorf("dependent node %q does not exist", dependent)
	}
	if dependency == dependent {
		return fmt.Errorf("%w: %s depends on itself", ErrCycle, dependent)
	}
	if !contains(g.edges[dependency], dependent) {
		g.edges[dependency] = append(g.edges[dependency], dependent)
	}
	if !contains(g.parents[dependent], dependency) {
		g.parents[dependent] = append(g.parents[dependent], dependency)
	}
	return nil
}

// Has returns true if id is a node
func (g *Graph) Has(id string) bool {
	return g.nodes[id]
}

// Dependencies returns direct dependencies of id
func (g *Graph) Dependencies(id string) []string {
	return g.parents[id]
}

// Reaches returns true if to is from or depends on from, directly or transitively
func (g *Graph) Reaches(from, to string) bool {
	visited := map[string]bool{}
	var dfs func(id string) bool
	dfs = func(id string) bool {
		if id == to {
			return true
		}
		visited[id] = true
		for _, child := range g.edges[id] {
			if !visited[child] && dfs(child) {
				return true
			}
		}
		return false
	}
	return dfs(from)
}

func (g *Graph) ids() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Cycle returns a dependency cycle path, or nil
func (g *Graph) Cycle() []string {
	visited := map[string]bool{}
	stack := map[string]bool{}
	var path []string
	var cycle []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		stack[id] = true
		path = append(path, id)
		for _, child := range g.edges[id] {
			if !visited[child] {
				if dfs(child) {
					return true
				}
				continue
			}
			if stack[child] {
				for i, candidate := range path {
					if candidate == child {
						cycle = append(append([]string{}, path[i:]...), child)
						break
					}
				}
				return true
			}
		}
		stack[id] = false
		path = path[:len(path)-1]
		return false
	}
	for _, id := range g.ids() {
		if !visited[id] && dfs(id) {
			return cycle
		}
	}
	return nil
}

// Sort returns nodes with dependencies before dependents; ties are broken lexicographically
func (g *Graph) Sort() ([]string, error) {
	if cycle := g.Cycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}
	visited := map[string]bool{}
	var result []string
	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		parents := append([]string{}, g.parents[id]...)
		sort.Strings(parents)
		for _, parent := range parents {
			visit(parent)
		}
		result = append(result, id)
	}
	for _, id := range g.ids() {
		visit(id)
	}
	return result, nil
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
