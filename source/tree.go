package source

import (
	"path/filepath"
	"sort"
	"strings"
)

// Node is either a nested directory or a file leaf
type Node struct {
	Dir  *Tree
	File *File
}

// IsDir returns true if node is a directory
func (n *Node) IsDir() bool {
	return n.Dir != nil
}

// Tree represents a directory tree of build inputs keyed by path segment
type Tree struct {
	children map[string]*Node
}

// NewTree creates an empty tree
func NewTree() *Tree {
	return &Tree{children: map[string]*Node{}}
}

// Add inserts file under the segments of its absolute path
func (t *Tree) Add(file *File) {
	t.Insert(Segments(file.Path), file)
}

// Insert inserts file under the supplied segments, the last segment names the leaf.
// An existing leaf at the same location is kept, a file never replaces a directory.
func (t *Tree) Insert(segments []string, file *File) {
	if len(segments) == 0 {
		return
	}
	if t.children == nil {
		t.children = map[string]*Node{}
	}
	head := segments[0]
	node, ok := t.children[head]
	if len(segments) == 1 {
		if !ok {
			t.children[head] = &Node{File: file}
		}
		return
	}
	if !ok {
		node = &Node{Dir: NewTree()}
		t.children[head] = node
	}
	if !node.IsDir() {
		return
	}
	node.Dir.Insert(segments[1:], file)
}

// Keys returns child segments in lexicographic order
func (t *Tree) Keys() []string {
	keys := make([]string, 0, len(t.children))
	for key := range t.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Child returns child node for the segment
func (t *Tree) Child(segment string) *Node {
	return t.children[segment]
}

// Len returns number of leaves in the tree
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	count := 0
	for _, node := range t.children {
		if node.IsDir() {
			count += node.Dir.Len()
			continue
		}
		count++
	}
	return count
}

// Paths returns distinct file paths in traversal order
func (t *Tree) Paths() []string {
	return Visit(func(file *File) (string, bool) {
		return file.Path, true
	}, t)
}

// Segments splits a path into non-empty segments
func Segments(path string) []string {
	var result []string
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment != "" {
			result = append(result, segment)
		}
	}
	return result
}
