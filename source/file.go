package source

import (
	"path/filepath"
	"strings"
)

// Language represents a declared source language tag
type Language string

const (
	LanguageC     Language = "c"
	LanguageCXX   Language = "cpp"
	LanguageOther Language = "other"
)

// WildcardPlatform matches every target platform
const WildcardPlatform = "*"

// File represents a single build input of a target
type File struct {
	Path     string   // Absolute, cleaned file path
	Language Language // Declared language
	Platform string   // Platform affinity, WildcardPlatform or a platform name
	Excluded bool     // Member of the target's exclusion set
	RootDir  string   // Declared root directory of the owning target
}

// NewFile creates a file with language inferred from the extension and wildcard affinity
func NewFile(path string, rootDir string) *File {
	return &File{
		Path:     filepath.Clean(path),
		Language: InferLanguage(path),
		Platform: WildcardPlatform,
		RootDir:  filepath.Clean(rootDir),
	}
}

// Ext returns lower-cased file extension including the dot
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Path))
}

// Dir returns the directory holding the file
func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// RelativeDir returns the file directory relative to RootDir, "." when the file is directly in RootDir
func (f *File) RelativeDir() string {
	if f.RootDir == "" {
		return "."
	}
	rel, err := filepath.Rel(f.RootDir, f.Dir())
	if err != nil {
		return filepath.ToSlash(f.Dir())
	}
	return filepath.ToSlash(rel)
}

// MatchesPlatform returns true if the file affinity is wildcard or equals platform
func (f *File) MatchesPlatform(platform string) bool {
	return f.Platform == "" || f.Platform == WildcardPlatform || f.Platform == platform
}

// ObjectFileName returns the per-file intermediate object path, or empty string when
// the file sits directly in RootDir and the default object naming applies.
func (f *File) ObjectFileName() string {
	if f.RelativeDir() == "." {
		return ""
	}
	rel, err := filepath.Rel(f.RootDir, f.Path)
	if err != nil {
		return ""
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".obj"
	return "$(IntDir)" + NTPath(rel)
}

// NTPath converts a slash separated path to backslash separated one
func NTPath(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "/", `\`)
}
