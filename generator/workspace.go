package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/vsproj/artifact"
)

// Workspace builds a workspace aggregating artifacts of names found next to URL. The identifier
// of the workspace artifact at URL is reused, an empty URL mints one and resolves names in the
// working directory. A malformed prior workspace is reported as identity.ErrMalformedWorkspace.
func (g *Generator) Workspace(ctx context.Context, URL string, names []string) (*artifact.Workspace, error) {
	ret := &artifact.Workspace{Configurations: artifact.Configurations(g.config.MSBuildPlatform)}
	var dir string
	if URL == "" {
		ret.ID = g.ids.Mint()
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	} else {
		id, err := g.ids.WorkspaceID(ctx, URL)
		if err != nil {
			return nil, err
		}
		ret.ID = id
		dir = parentURL(URL)
	}
	ret.Projects = g.refs.Resolve(ctx, dir, names)
	if len(ret.Projects) < len(names) {
		g.logger.Info("workspace omits projects without artifacts", "url", URL,
			"requested", len(names), "resolved", len(ret.Projects))
	}
	return ret, nil
}

// GenerateWorkspace writes the workspace artifact at URL, it returns true when content changed
func (g *Generator) GenerateWorkspace(ctx context.Context, URL string, names []string) (bool, error) {
	if URL == "" {
		return false, fmt.Errorf("workspace location was empty")
	}
	workspace, err := g.Workspace(ctx, URL, names)
	if err != nil {
		return false, err
	}
	data, err := g.emitter.Workspace(workspace)
	if err != nil {
		return false, err
	}
	return g.writer.write(ctx, URL, data)
}

func parentURL(URL string) string {
	if index := strings.LastIndex(URL, "/"); index > 0 {
		return URL[:index]
	}
	return filepath.Dir(URL)
}
