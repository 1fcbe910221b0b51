package artifact

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/viant/vsproj/identity"
)

const projectTemplate = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="{{.ToolsVersion}}" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup Label="ProjectConfigurations">
{{- range .Configurations}}
    <ProjectConfiguration Include="{{.Key}}">
      <Configuration>{{.Name}}</Configuration>
      <Platform>{{.Platform}}</Platform>
    </ProjectConfiguration>
{{- end}}
  </ItemGroup>
  <PropertyGroup Label="Globals">
    {{projectMarker .ID}}
    <RootNamespace>{{.RootNamespace}}</RootNamespace>
  </PropertyGroup>
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.Default.props" />
{{- range .Configurations}}
  <PropertyGroup {{condition .}} Label="Configuration">
    <ConfigurationType>{{$.ConfigurationType}}</ConfigurationType>
    <CharacterSet>Unicode</CharacterSet>
    <UseDebugLibraries>{{.Debug}}</UseDebugLibraries>
  </PropertyGroup>
{{- end}}
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.props" />
  <ImportGroup Label="ExtensionSettings" />
{{- range .Configurations}}
  <ImportGroup Label="PropertySheets" {{condition .}}>
    <Import Project="$(UserRootDir)\Microsoft.Cpp.$(Platform).user.props" Condition="exists('$(UserRootDir)\Microsoft.Cpp.$(Platform).user.props')" Label="LocalAppDataPlatform" />
  </ImportGroup>
{{- end}}
{{- range .Configurations}}
  <PropertyGroup>
    <IntDir {{condition .}}>{{$.IntDir}}</IntDir>
    <OutDir {{condition .}}>{{$.OutDir}}</OutDir>
{{- if $.TargetName}}
    <TargetName {{condition .}}>{{$.TargetName}}</TargetName>
{{- end}}
{{- if $.TargetExt}}
    <TargetExt {{condition .}}>{{$.TargetExt}}</TargetExt>
{{- end}}
  </PropertyGroup>
{{- end}}
{{- range .Configurations}}
  <ItemDefinitionGroup {{condition .}}>
    <ClCompile>
{{- if .Debug}}
      <Optimization>Disabled</Optimization>
{{- else}}
      <Optimization>MaxSpeed</Optimization>
{{- end}}
      <AdditionalIncludeDirectories>{{join $.IncludeDirs ";"}}</AdditionalIncludeDirectories>
      <PreprocessorDefinitions>{{join $.Defines ";"}}</PreprocessorDefinitions>
{{- if .Debug}}
      <BasicRuntimeChecks>EnableFastChecks</BasicRuntimeChecks>
      <RuntimeLibrary>MultiThreadedDebugDLL</RuntimeLibrary>
{{- else}}
      <RuntimeLibrary>MultiThreadedDLL</RuntimeLibrary>
{{- end}}
      <RuntimeTypeInfo>false</RuntimeTypeInfo>
      <WarningLevel>Level4</WarningLevel>
{{- if .Debug}}
      <DebugInformationFormat>OldStyle</DebugInformationFormat>
{{- end}}
      <AdditionalOptions>{{join $.CompilerOptions " "}}</AdditionalOptions>
    </ClCompile>
{{- if $.Links}}
    <Link>
{{- else}}
    <Lib>
{{- end}}
      <AdditionalDependencies>{{join $.Libs ";"}}</AdditionalDependencies>
      <AdditionalLibraryDirectories>{{join $.LibDirs ";"}}</AdditionalLibraryDirectories>
      <AdditionalOptions>{{join $.LinkerOptions " "}}</AdditionalOptions>
      <GenerateDebugInformation>{{.Debug}}</GenerateDebugInformation>
{{- if $.Links}}
      <SubSystem>{{$.SubSystem}}</SubSystem>
    </Link>
{{- else}}
    </Lib>
{{- end}}
  </ItemDefinitionGroup>
{{- end}}
  <ItemGroup Label="ClIncludeItems">
{{- range .Headers}}
    <ClInclude Include="{{attr .Include}}" />
{{- end}}
  </ItemGroup>
  <ItemGroup Label="ClCompileItems">
{{- range .Sources}}
{{- if .Excluded}}
    <ClCompile Include="{{attr .Include}}">
{{- range $.Configurations}}
      <ExcludedFromBuild {{condition .}}>true</ExcludedFromBuild>
{{- end}}
    </ClCompile>
{{- else if .ObjectFileName}}
    <ClCompile Include="{{attr .Include}}">
      <ObjectFileName>{{.ObjectFileName}}</ObjectFileName>
    </ClCompile>
{{- else}}
    <ClCompile Include="{{attr .Include}}" />
{{- end}}
{{- end}}
  </ItemGroup>
  <ItemGroup Label="ProjectReferenceItems">
{{- range .References}}
    <ProjectReference Include="{{attr .Include}}">
      <Project>{{"{"}}{{.ID}}{{"}"}}</Project>
      <ReferenceOutputAssembly>false</ReferenceOutputAssembly>
    </ProjectReference>
{{- end}}
  </ItemGroup>
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.targets" />
  <ImportGroup Label="ExtensionTargets" />
</Project>
`

const filtersTemplate = `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="{{.ToolsVersion}}" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup>
{{- range .Filters}}
    {{filterMarker .Include}}
      {{filterIDMarker .ID}}
    </Filter>
{{- end}}
  </ItemGroup>
  <ItemGroup>
{{- range .Headers}}
    <ClInclude Include="{{attr .Include}}">
      <Filter>{{attr .Filter}}</Filter>
    </ClInclude>
{{- end}}
  </ItemGroup>
  <ItemGroup>
{{- range .Sources}}
    <ClCompile Include="{{attr .Include}}">
      <Filter>{{attr .Filter}}</Filter>
    </ClCompile>
{{- end}}
  </ItemGroup>
</Project>
`

const userTemplate = `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="{{.ToolsVersion}}" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
</Project>
`

const workspaceTemplate = `
{{banner}}
{{comment}}
{{- range .Projects}}
Project("{{"{"}}{{upper $.ID}}{{"}"}}") = "{{.Name}}", "{{.Include}}", "{{"{"}}{{upper .ID}}{{"}"}}"
EndProject
{{- end}}
Global
	GlobalSection(SolutionConfigurationPlatforms) = preSolution
{{- range .Configurations}}
		{{.Key}} = {{.Key}}
{{- end}}
	EndGlobalSection
	GlobalSection(ProjectConfigurationPlatforms) = postSolution
{{- range $project := .Projects}}
{{- range $.Configurations}}
		{{"{"}}{{upper $project.ID}}{{"}"}}.{{.Key}}.ActiveCfg = {{.Key}}
		{{"{"}}{{upper $project.ID}}{{"}"}}.{{.Key}}.Build.0 = {{.Key}}
{{- end}}
{{- end}}
	EndGlobalSection
	GlobalSection(SolutionProperties) = preSolution
		HideSolutionNode = FALSE
	EndGlobalSection
EndGlobal
`

// MSBuild renders MSBuild project, filters, user and solution files
type MSBuild struct {
	project   *template.Template
	filters   *template.Template
	user      *template.Template
	workspace *template.Template
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"attr": html.EscapeString,
	"upper": func(id uuid.UUID) string {
		return strings.ToUpper(identity.Format(id))
	},
	"condition": func(c Configuration) string {
		return fmt.Sprintf(`Condition="'$(Configuration)|$(Platform)'=='%s'"`, c.Key())
	},
	"projectMarker":  identity.ProjectMarker,
	"filterMarker":   identity.FilterMarker,
	"filterIDMarker": identity.FilterIDMarker,
	"banner":         func() string { return identity.WorkspaceBanner },
	"comment":        func() string { return identity.WorkspaceComment },
}

// NewMSBuild creates MSBuild emitter
func NewMSBuild() *MSBuild {
	return &MSBuild{
		project:   template.Must(template.New("project").Funcs(funcs).Parse(projectTemplate)),
		filters:   template.Must(template.New("filters").Funcs(funcs).Parse(filtersTemplate)),
		user:      template.Must(template.New("user").Funcs(funcs).Parse(userTemplate)),
		workspace: template.Must(template.New("workspace").Funcs(funcs).Parse(workspaceTemplate)),
	}
}

func (m *MSBuild) Project(project *Project) ([]byte, error) {
	return render(m.project, project)
}

func (m *MSBuild) Filters(filters *Filters) ([]byte, error) {
	return render(m.filters, filters)
}

func (m *MSBuild) User(project *Project) ([]byte, error) {
	return render(m.user, project)
}

// Workspace renders solution with CRLF line endings
func (m *MSBuild) Workspace(workspace *Workspace) ([]byte, error) {
	data, err := render(m.workspace, workspace)
	if err != nil {
		return nil, err
	}
	return bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n")), nil
}

func render(tmpl *template.Template, data interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %v: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
