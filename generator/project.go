package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/vsproj/artifact"
	"github.com/viant/vsproj/filter"
	"github.com/viant/vsproj/source"
	"github.com/viant/vsproj/target"
)

const (
	defaultIntDir = `$(SolutionDir)build\$(ProjectName)\$(Configuration)\`
	defaultOutDir = `$(SolutionDir)$(Configuration)\`
	filtersExt    = ".filters"
	userExt       = ".user"
)

// Result represents artifact locations of one generated target
type Result struct {
	Name         string
	ProjectURL   string
	FiltersURL   string
	UserURL      string
	Written      []string          // Locations whose content changed
	Fingerprints map[string]uint64 // Content fingerprint per location written or found unchanged
}

// ProjectURL returns location of the target project artifact
func (g *Generator) ProjectURL(t target.Target) string {
	return url.Join(t.ProjectDir(), t.Name()+g.config.ProjectExt)
}

// Project builds project and filters models of the target for the configured platform
func (g *Generator) Project(ctx context.Context, t target.Target) (*artifact.Project, *artifact.Filters, error) {
	if !t.Kind().Valid() {
		return nil, nil, fmt.Errorf("%w %v: unsupported type %q", target.ErrInvalidTarget, t.Name(), t.Kind())
	}
	platform := g.config.Platform
	projectURL := g.ProjectURL(t)

	walker := source.NewWalker()
	sourceFilters := filter.ProjectTree(t.SourceTree(platform), filter.SourceFiles, t.RootSourceDir(),
		filter.WithWalker(walker))
	headerFilters := filter.ProjectTree(t.IncludeTree(platform), filter.HeaderFiles, t.RootIncludeDir(),
		filter.WithWalker(walker), filter.WithKeep((*source.File).IsHeader))

	kind := t.Kind()
	project := &artifact.Project{
		Name:              t.Name(),
		RootNamespace:     t.Name(),
		ID:                g.ids.ProjectID(ctx, projectURL),
		ToolsVersion:      g.config.ToolsVersion,
		ConfigurationType: kind.ConfigurationType(),
		SubSystem:         kind.SubSystem(),
		Links:             kind.Links(),
		Configurations:    artifact.Configurations(g.config.MSBuildPlatform),
		IntDir:            dirProperty(t.IntermediateDir(), defaultIntDir),
		OutDir:            dirProperty(t.OutputDir(), defaultOutDir),
		IncludeDirs:       ntPaths(t.IncludeDirs(platform)),
		Defines:           t.Defines(platform),
		LibDirs:           ntPaths(t.LibDirs(platform)),
		Libs:              t.Libs(platform),
		CompilerOptions:   t.CompilerOptions(platform),
		LinkerOptions:     t.LinkerOptions(platform),
		References:        g.refs.Resolve(ctx, t.ProjectDir(), t.References(platform)),
	}
	project.TargetName, project.TargetExt = targetNameExt(t.Name(), kind, t.OutputFile())

	for _, file := range sourceFilters.Files {
		item := newItem(file, source.Classify(file, platform, source.NativeFamily), sourceFilters)
		if item.Header() {
			project.Headers = append(project.Headers, item)
			continue
		}
		project.Sources = append(project.Sources, item)
	}
	for _, file := range headerFilters.Files {
		project.Headers = append(project.Headers, newItem(file, source.RoleHeader, headerFilters))
	}

	index := g.ids.LoadFilters(ctx, projectURL+filtersExt)
	filters := &artifact.Filters{
		ToolsVersion: g.config.ToolsVersion,
		Headers:      project.Headers,
		Sources:      project.Sources,
	}
	for _, set := range []*filter.Set{headerFilters, sourceFilters} {
		for _, filterPath := range set.Paths {
			filters.Filters = append(filters.Filters, &artifact.Filter{Include: filterPath, ID: index.ID(filterPath)})
		}
	}
	g.logger.Debug("project built", "name", project.Name,
		"headers", len(project.Headers), "sources", len(project.Sources),
		"filters", len(filters.Filters), "references", len(project.References))
	return project, filters, nil
}

// Generate writes project, filters and user artifacts of the target into its project directory.
// The user artifact is written only when absent, it holds per-developer settings.
func (g *Generator) Generate(ctx context.Context, t target.Target) (*Result, error) {
	project, filters, err := g.Project(ctx, t)
	if err != nil {
		return nil, err
	}
	projectURL := g.ProjectURL(t)
	result := &Result{
		Name:         t.Name(),
		ProjectURL:   projectURL,
		FiltersURL:   projectURL + filtersExt,
		UserURL:      projectURL + userExt,
		Fingerprints: map[string]uint64{},
	}
	data, err := g.emitter.Project(project)
	if err != nil {
		return nil, err
	}
	if err = g.emit(ctx, result, result.ProjectURL, data, g.writer.write); err != nil {
		return nil, err
	}
	if data, err = g.emitter.Filters(filters); err != nil {
		return nil, err
	}
	if err = g.emit(ctx, result, result.FiltersURL, data, g.writer.write); err != nil {
		return nil, err
	}
	if data, err = g.emitter.User(project); err != nil {
		return nil, err
	}
	if err = g.emit(ctx, result, result.UserURL, data, g.writer.create); err != nil {
		return nil, err
	}
	return result, nil
}

func (g *Generator) emit(ctx context.Context, result *Result, URL string, data []byte, write func(ctx context.Context, URL string, data []byte) (bool, error)) error {
	written, err := write(ctx, URL, data)
	if err != nil {
		return err
	}
	if written {
		result.Written = append(result.Written, URL)
	}
	if fingerprint, ok := g.writer.fingerprint(URL); ok {
		result.Fingerprints[URL] = fingerprint
	}
	return nil
}

func newItem(file *source.File, role source.Role, set *filter.Set) *artifact.Item {
	item := &artifact.Item{
		Include: source.NTPath(file.Path),
		Path:    file.Path,
		Role:    role,
		Filter:  set.Filter(file.Path),
	}
	if role == source.RoleCompiled {
		item.ObjectFileName = file.ObjectFileName()
	}
	return item
}

// targetNameExt returns TargetName and TargetExt overrides for outputFile, empty values keep
// the toolchain defaults derived from the project name and kind.
func targetNameExt(name string, kind target.Kind, outputFile string) (string, string) {
	if outputFile == "" || outputFile == name || outputFile == name+kind.DefaultExt() {
		return "", ""
	}
	ext := filepath.Ext(outputFile)
	base := strings.TrimSuffix(outputFile, ext)
	if ext == kind.DefaultExt() {
		ext = ""
	}
	if base == name {
		base = ""
	}
	return base, ext
}

func dirProperty(dir, fallback string) string {
	if dir == "" {
		return fallback
	}
	dir = source.NTPath(dir)
	if !strings.HasSuffix(dir, `\`) {
		dir += `\`
	}
	return dir
}

func ntPaths(paths []string) []string {
	var result []string
	for _, path := range paths {
		result = append(result, source.NTPath(path))
	}
	return result
}
