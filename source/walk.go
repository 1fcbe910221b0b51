package source

// Walker tracks files already visited during one traversal.
// A file reachable from several tree locations is handed to the visitor once, at its first encounter.
type Walker struct {
	visited map[string]bool
}

// NewWalker creates a walker with an empty visited set
func NewWalker() *Walker {
	return &Walker{visited: map[string]bool{}}
}

// Visited returns true if path was already visited
func (w *Walker) Visited(path string) bool {
	return w.visited[path]
}

// Walk traverses tree depth first in lexicographic segment order, calling visit for every
// file not yet visited by w. Visitor returns false when the file produces no output.
func Walk[T any](w *Walker, tree *Tree, visit func(file *File) (T, bool)) []T {
	var items []T
	if tree == nil {
		return items
	}
	for _, key := range tree.Keys() {
		node := tree.children[key]
		if node.IsDir() {
			items = append(items, Walk(w, node.Dir, visit)...)
			continue
		}
		if node.File == nil || w.visited[node.File.Path] {
			continue
		}
		w.visited[node.File.Path] = true
		if item, ok := visit(node.File); ok {
			items = append(items, item)
		}
	}
	return items
}

// Visit traverses trees in the supplied order sharing one visited set
func Visit[T any](visit func(file *File) (T, bool), trees ...*Tree) []T {
	walker := NewWalker()
	var items []T
	for _, tree := range trees {
		items = append(items, Walk(walker, tree, visit)...)
	}
	return items
}
