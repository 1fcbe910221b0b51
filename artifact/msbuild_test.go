package artifact_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/vsproj/artifact"
	"github.com/viant/vsproj/identity"
	"github.com/viant/vsproj/reference"
	"github.com/viant/vsproj/source"
)

func sampleProject() *artifact.Project {
	return &artifact.Project{
		Name:              "yield.fs",
		RootNamespace:     "yield.fs",
		ID:                uuid.MustParse("5b0c2bd6-3a1e-4c9d-9a0e-7f0d2b5c11aa"),
		ToolsVersion:      "4.0",
		ConfigurationType: "StaticLibrary",
		Configurations:    artifact.Configurations("Win32"),
		IntDir:            `$(Configuration)\`,
		OutDir:            `$(SolutionDir)$(Configuration)\`,
		TargetExt:         ".lib",
		Defines:           []string{"WIN32", "_DEBUG"},
		Headers: []*artifact.Item{
			{Include: `C:\ws\src\yield\fs\file.hpp`, Role: source.RoleHeader},
		},
		Sources: []*artifact.Item{
			{Include: `C:\ws\src\yield\fs\file.cpp`, Role: source.RoleCompiled},
			{Include: `C:\ws\src\yield\fs\win32\directory.cpp`, Role: source.RoleCompiled, ObjectFileName: `$(IntDir)win32\directory.obj`},
			{Include: `C:\ws\src\yield\fs\posix\directory.cpp`, Role: source.RoleExcluded},
		},
		References: []*reference.Reference{
			{Name: "yield", Include: "yield.vcxproj", ID: uuid.MustParse("9e1d2c3b-4a5f-4e6d-8c7b-0a1b2c3d4e5f")},
		},
	}
}

func TestMSBuild_Project(t *testing.T) {
	data, err := artifact.NewMSBuild().Project(sampleProject())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "    <ProjectGuid>{5b0c2bd6-3a1e-4c9d-9a0e-7f0d2b5c11aa}</ProjectGuid>\n")
	assert.Contains(t, text, "    <ClInclude Include=\"C:\\ws\\src\\yield\\fs\\file.hpp\" />\n")
	assert.Contains(t, text, "    <ClCompile Include=\"C:\\ws\\src\\yield\\fs\\file.cpp\" />\n")
	assert.Contains(t, text, "      <ObjectFileName>$(IntDir)win32\\directory.obj</ObjectFileName>\n")
	assert.Contains(t, text, "      <ExcludedFromBuild Condition=\"'$(Configuration)|$(Platform)'=='Release|Win32'\">true</ExcludedFromBuild>\n")
	assert.Contains(t, text, "      <Project>{9e1d2c3b-4a5f-4e6d-8c7b-0a1b2c3d4e5f}</Project>\n")
	assert.Contains(t, text, "    <Lib>\n")
	assert.NotContains(t, text, "<TargetName")
	assert.Contains(t, text, "<TargetExt Condition=\"'$(Configuration)|$(Platform)'=='Debug|Win32'\">.lib</TargetExt>")
	assert.Equal(t, 2, strings.Count(text, "<ProjectConfiguration Include="))
	assert.NotContains(t, text, "\n\n")
}

func TestMSBuild_ProjectLinks(t *testing.T) {
	project := sampleProject()
	project.ConfigurationType = "Application"
	project.Links = true
	project.SubSystem = "CONSOLE"
	data, err := artifact.NewMSBuild().Project(project)
	require.NoError(t, err)
	assert.Contains(t, string(data), "      <SubSystem>CONSOLE</SubSystem>\n    </Link>\n")
	assert.NotContains(t, string(data), "<Lib>")
}

func TestMSBuild_IdentityRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	emitter := artifact.NewMSBuild()
	resolver := identity.New(afs.New())

	project := sampleProject()
	data, err := emitter.Project(project)
	require.NoError(t, err)
	projectURL := filepath.Join(dir, "yield.fs.vcxproj")
	require.NoError(t, os.WriteFile(projectURL, data, 0o644))
	assert.Equal(t, project.ID, resolver.ProjectID(ctx, projectURL))

	filters := &artifact.Filters{
		ToolsVersion: "4.0",
		Filters: []*artifact.Filter{
			{Include: "Source Files", ID: uuid.New()},
			{Include: `Source Files\win32`, ID: uuid.New()},
			{Include: `Header Files\R&D`, ID: uuid.New()},
		},
	}
	data, err = emitter.Filters(filters)
	require.NoError(t, err)
	filtersURL := filepath.Join(dir, "yield.fs.vcxproj.filters")
	require.NoError(t, os.WriteFile(filtersURL, data, 0o644))
	index := resolver.LoadFilters(ctx, filtersURL)
	for _, candidate := range filters.Filters {
		id, ok := index.Lookup(candidate.Include)
		assert.True(t, ok, candidate.Include)
		assert.Equal(t, candidate.ID, id, candidate.Include)
	}

	workspace := &artifact.Workspace{
		ID:             uuid.New(),
		Projects:       project.References,
		Configurations: artifact.Configurations("Win32"),
	}
	data, err = emitter.Workspace(workspace)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\r\n\t\t{9E1D2C3B-4A5F-4E6D-8C7B-0A1B2C3D4E5F}.Debug|Win32.Build.0 = Debug|Win32\r\n")
	assert.NotContains(t, strings.ReplaceAll(string(data), "\r\n", ""), "\n")
	workspaceURL := filepath.Join(dir, "yield.sln")
	require.NoError(t, os.WriteFile(workspaceURL, data, 0o644))
	id, err := resolver.WorkspaceID(ctx, workspaceURL)
	require.NoError(t, err)
	assert.Equal(t, workspace.ID, id)
}

func TestMSBuild_EmptyWorkspace(t *testing.T) {
	data, err := artifact.NewMSBuild().Workspace(&artifact.Workspace{ID: uuid.New(), Configurations: artifact.Configurations("Win32")})
	require.NoError(t, err)
	lines := strings.Split(string(data), "\r\n")
	assert.Equal(t, "", lines[0])
	assert.Equal(t, identity.WorkspaceBanner, lines[1])
	assert.Equal(t, "Global", lines[3])
}
