// Package filter projects source files into IDE virtual folders ("filters").
package filter

import (
	"path/filepath"
	"strings"

	"github.com/viant/vsproj/source"
)

// Separator delimits filter path segments
const Separator = `\`

const (
	// SourceFiles is the head filter of compiled sources
	SourceFiles = "Source Files"
	// HeaderFiles is the head filter of headers
	HeaderFiles = "Header Files"
)

// Set represents projected filters with per-file assignment
type Set struct {
	Paths       []string          // Filter paths, retained paths first then synthesized intermediate nodes
	Files       []*source.File    // Projected files in traversal order
	Assignments map[string]string // Absolute file path to filter path
	index       map[string]bool
}

// Filter returns filter path assigned to file path
func (s *Set) Filter(path string) string {
	return s.Assignments[path]
}

// Has returns true if filter path is in the set
func (s *Set) Has(filterPath string) bool {
	return s.index[filterPath]
}

func (s *Set) add(filterPath string) {
	if s.index[filterPath] {
		return
	}
	s.index[filterPath] = true
	s.Paths = append(s.Paths, filterPath)
}

// Option configures ProjectTree
type Option func(o *options)

type options struct {
	walker *source.Walker
	keep   func(file *source.File) bool
}

// WithWalker shares walker visited files with other projections, a file visited by an earlier
// projection is not projected again.
func WithWalker(walker *source.Walker) Option {
	return func(o *options) {
		o.walker = walker
	}
}

// WithKeep projects only files for which keep returns true, skipped files are still visited
func WithKeep(keep func(file *source.File) bool) Option {
	return func(o *options) {
		o.keep = keep
	}
}

// ProjectTree walks the tree and projects its files under head relative to rootDir
func ProjectTree(tree *source.Tree, head, rootDir string, opts ...Option) *Set {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.walker == nil {
		o.walker = source.NewWalker()
	}
	files := source.Walk(o.walker, tree, func(file *source.File) (*source.File, bool) {
		if o.keep != nil && !o.keep(file) {
			return nil, false
		}
		return file, true
	})
	return Project(head, rootDir, files)
}

// Project computes the minimal filter set for files, see collapse for the folding rules
func Project(head, rootDir string, files []*source.File) *Set {
	var distinct []string
	seen := map[string]bool{}
	assignments := make(map[string]string, len(files))
	for _, file := range files {
		filterPath := filterOf(head, rootDir, file)
		assignments[file.Path] = filterPath
		if !seen[filterPath] {
			seen[filterPath] = true
			distinct = append(distinct, filterPath)
		}
	}

	renamed := collapse(head, distinct)
	result := &Set{Files: files, Assignments: assignments, index: map[string]bool{}}
	for _, filterPath := range distinct {
		result.add(renamed[filterPath])
	}
	for path, filterPath := range assignments {
		assignments[path] = renamed[filterPath]
	}
	retained := append([]string{}, result.Paths...)
	for _, filterPath := range retained {
		segments := strings.Split(filterPath, Separator)
		for i := 1; i < len(segments); i++ {
			result.add(strings.Join(segments[:i], Separator))
		}
	}
	return result
}

func filterOf(head, rootDir string, file *source.File) string {
	rel, err := filepath.Rel(filepath.Clean(rootDir), file.Dir())
	if err != nil || rel == "." {
		return head
	}
	return head + Separator + source.NTPath(rel)
}

// collapse maps every distinct filter path to its collapsed form. A single path folds to its
// first segment; otherwise the longest common segment prefix beyond the head is stripped.
func collapse(head string, distinct []string) map[string]string {
	renamed := make(map[string]string, len(distinct))
	switch len(distinct) {
	case 0:
		return renamed
	case 1:
		renamed[distinct[0]] = strings.Split(distinct[0], Separator)[0]
		return renamed
	}

	headSize := len(strings.Split(head, Separator))
	prefix := strings.Split(distinct[0], Separator)
	for _, filterPath := range distinct[1:] {
		prefix = commonPrefix(prefix, strings.Split(filterPath, Separator))
	}
	for _, filterPath := range distinct {
		segments := strings.Split(filterPath, Separator)
		if len(prefix) <= headSize {
			renamed[filterPath] = filterPath
			continue
		}
		tail := segments[len(prefix):]
		renamed[filterPath] = strings.Join(append(append([]string{}, segments[:headSize]...), tail...), Separator)
	}
	return renamed
}

func commonPrefix(a, b []string) []string {
	size := len(a)
	if len(b) < size {
		size = len(b)
	}
	i := 0
	for ; i < size; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return a[:i]
}
