package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	projectMarkerOpen  = "<ProjectGuid>"
	projectMarkerClose = "</ProjectGuid>"
)

// ProjectMarker renders the project identity line scanned by LookupProject
func ProjectMarker(id uuid.UUID) string {
	return projectMarkerOpen + "{" + Format(id) + "}" + projectMarkerClose
}

// LookupProject scans a prior project artifact for its identifier
func (r *Resolver) LookupProject(ctx context.Context, URL string) (uuid.UUID, bool) {
	lines, ok := r.lines(ctx, URL)
	if !ok {
		return uuid.Nil, false
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, projectMarkerOpen) {
			continue
		}
		value := strings.TrimSuffix(strings.TrimPrefix(line, projectMarkerOpen), projectMarkerClose)
		id, err := Parse(value)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
	return uuid.Nil, false
}

// ProjectID returns the identifier recorded in a prior project artifact or a fresh one
func (r *Resolver) ProjectID(ctx context.Context, URL string) uuid.UUID {
	if id, ok := r.LookupProject(ctx, URL); ok {
		return id
	}
	return r.minted("project", URL)
}
