package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// WorkspaceBanner is the format line of a workspace artifact
	WorkspaceBanner = "Microsoft Visual Studio Solution File, Format Version 11.00"
	// WorkspaceComment is the product comment line of a workspace artifact
	WorkspaceComment = "# Visual C++ Express 2010"

	workspaceEntryOpen = `Project("{`
	workspaceEntryEnd  = "EndProject"
	workspaceGlobal    = "Global"
)

// ErrMalformedWorkspace reports a prior workspace artifact whose header cannot be trusted
var ErrMalformedWorkspace = errors.New("malformed workspace artifact")

// WorkspaceID recovers the workspace identifier from the first entry of a prior workspace
// artifact. A missing artifact mints a fresh identifier; a header that does not match the
// expected structure is a hard failure.
func (r *Resolver) WorkspaceID(ctx context.Context, URL string) (uuid.UUID, error) {
	lines, ok := r.lines(ctx, URL)
	if !ok {
		return r.minted("workspace", URL), nil
	}
	if len(lines) < 4 {
		return uuid.Nil, fmt.Errorf("%w %v: expected at least 4 lines, got %d", ErrMalformedWorkspace, URL, len(lines))
	}
	if banner := strings.TrimSpace(lines[1]); banner != WorkspaceBanner {
		return uuid.Nil, fmt.Errorf("%w %v: unexpected banner %q", ErrMalformedWorkspace, URL, banner)
	}
	if !strings.HasPrefix(lines[2], "#") {
		return uuid.Nil, fmt.Errorf("%w %v: unexpected comment line %q", ErrMalformedWorkspace, URL, lines[2])
	}
	entry := lines[3]
	if strings.TrimSpace(entry) == workspaceGlobal {
		// no entries were written last time
		return r.minted("workspace without entries", URL), nil
	}
	if !strings.HasPrefix(entry, workspaceEntryOpen) {
		return uuid.Nil, fmt.Errorf("%w %v: unexpected entry line %q", ErrMalformedWorkspace, URL, entry)
	}
	if len(lines) < 5 || strings.TrimSpace(lines[4]) != workspaceEntryEnd {
		return uuid.Nil, fmt.Errorf("%w %v: entry is not terminated", ErrMalformedWorkspace, URL)
	}
	value := entry[len(workspaceEntryOpen):]
	if end := strings.Index(value, "}"); end != -1 {
		value = value[:end]
	}
	id, err := Parse(value)
	if err != nil {
		return r.minted("workspace identifier unparseable", URL), nil
	}
	return id, nil
}
