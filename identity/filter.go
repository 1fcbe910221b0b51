package identity

import (
	"context"
	"html"
	"strings"

	"github.com/google/uuid"
)

const (
	filterMarkerOpen = `<Filter Include="`
	filterMarkerEnd  = `">`
	filterIDOpen     = "<UniqueIdentifier>"
	filterIDClose    = "</UniqueIdentifier>"
)

// FilterMarker renders a filter declaration line, the path is attribute escaped
func FilterMarker(filterPath string) string {
	return filterMarkerOpen + html.EscapeString(filterPath) + filterMarkerEnd
}

// FilterIDMarker renders the identifier line following a filter declaration
func FilterIDMarker(id uuid.UUID) string {
	return filterIDOpen + "{" + Format(id) + "}" + filterIDClose
}

// FilterIndex holds filter identifiers recovered from one prior filters artifact
type FilterIndex struct {
	URL      string
	ids      map[string]uuid.UUID
	resolver *Resolver
}

// Lookup returns recovered identifier of filter path
func (i *FilterIndex) Lookup(filterPath string) (uuid.UUID, bool) {
	id, ok := i.ids[filterPath]
	return id, ok
}

// ID returns recovered identifier of filter path or a fresh one
func (i *FilterIndex) ID(filterPath string) uuid.UUID {
	if id, ok := i.Lookup(filterPath); ok {
		return id
	}
	return i.resolver.minted("filter", i.URL, "filter", filterPath)
}

// Len returns number of recovered identifiers
func (i *FilterIndex) Len() int {
	return len(i.ids)
}

// LoadFilters reads a prior filters artifact once. Each declaration line is followed by its
// identifier line; declarations whose identifier does not parse are left out of the index.
func (r *Resolver) LoadFilters(ctx context.Context, URL string) *FilterIndex {
	index := &FilterIndex{URL: URL, ids: map[string]uuid.UUID{}, resolver: r}
	lines, ok := r.lines(ctx, URL)
	if !ok {
		return index
	}
	for i := 0; i+1 < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, filterMarkerOpen) || !strings.HasSuffix(line, filterMarkerEnd) {
			continue
		}
		filterPath := html.UnescapeString(line[len(filterMarkerOpen) : len(line)-len(filterMarkerEnd)])
		if _, ok := index.ids[filterPath]; ok {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		value := strings.TrimSuffix(strings.TrimPrefix(next, filterIDOpen), filterIDClose)
		if id, err := Parse(value); err == nil {
			index.ids[filterPath] = id
		}
	}
	return index
}

// FilterID returns identifier of filterPath recorded in a prior filters artifact or a fresh one
func (r *Resolver) FilterID(ctx context.Context, URL, filterPath string) uuid.UUID {
	return r.LoadFilters(ctx, URL).ID(filterPath)
}
