// Package artifact defines generated artifact models and renders them as MSBuild project,
// filters and solution files.
package artifact

import (
	"github.com/google/uuid"
	"github.com/viant/vsproj/reference"
	"github.com/viant/vsproj/source"
)

const (
	Debug   = "Debug"
	Release = "Release"
)

// Configuration represents one build configuration on one platform
type Configuration struct {
	Name     string
	Platform string
}

// Key returns configuration|platform pair
func (c Configuration) Key() string {
	return c.Name + "|" + c.Platform
}

// Debug returns true for the debug configuration
func (c Configuration) Debug() bool {
	return c.Name == Debug
}

// Configurations returns Debug and Release for platform
func Configurations(platform string) []Configuration {
	return []Configuration{{Name: Debug, Platform: platform}, {Name: Release, Platform: platform}}
}

// Item represents one file entry of a project
type Item struct {
	Include        string // Backslash separated file path
	Path           string // Absolute file path
	Role           source.Role
	ObjectFileName string // Per-file object path override, empty for default naming
	Filter         string // Virtual folder
}

// Header returns true if item is a header
func (i *Item) Header() bool {
	return i.Role == source.RoleHeader
}

// Excluded returns true if item is disabled for every configuration
func (i *Item) Excluded() bool {
	return i.Role == source.RoleExcluded
}

// Project represents a compiled target project
type Project struct {
	Name              string
	RootNamespace     string
	ID                uuid.UUID
	ToolsVersion      string
	ConfigurationType string
	SubSystem         string
	Links             bool
	Configurations    []Configuration
	IntDir            string
	OutDir            string
	TargetName        string // Empty when the target name is the project name
	TargetExt         string // Empty when the extension is the default one
	IncludeDirs       []string
	Defines           []string
	LibDirs           []string
	Libs              []string
	CompilerOptions   []string
	LinkerOptions     []string
	Headers           []*Item
	Sources           []*Item
	References        []*reference.Reference
}

// Filter represents a virtual folder
type Filter struct {
	Include string
	ID      uuid.UUID
}

// Filters represents the virtual folder grouping of a project
type Filters struct {
	ToolsVersion string
	Filters      []*Filter
	Headers      []*Item
	Sources      []*Item
}

// Workspace represents a solution aggregating projects
type Workspace struct {
	ID             uuid.UUID
	Projects       []*reference.Reference
	Configurations []Configuration
}

// Emitter renders artifacts
type Emitter interface {
	Project(project *Project) ([]byte, error)
	Filters(filters *Filters) ([]byte, error)
	User(project *Project) ([]byte, error)
	Workspace(workspace *Workspace) ([]byte, error)
}
