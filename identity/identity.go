// Package identity recovers stable identifiers from previously generated artifacts.
// A missing or unreadable artifact, or an identifier that does not parse, yields a freshly minted
// identifier instead of an error, so regeneration is never blocked by prior output.
package identity

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
)

// Resolver looks up identifiers in prior artifacts or mints new ones
type Resolver struct {
	fs     afs.Service
	logger *slog.Logger
	mint   func() uuid.UUID
}

// Option configures Resolver
type Option func(r *Resolver)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMint sets identifier factory
func WithMint(mint func() uuid.UUID) Option {
	return func(r *Resolver) {
		if mint != nil {
			r.mint = mint
		}
	}
}

// New creates a resolver reading prior artifacts with fs
func New(fs afs.Service, options ...Option) *Resolver {
	if fs == nil {
		fs = afs.New()
	}
	ret := &Resolver{
		fs:     fs,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		mint:   uuid.New,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Mint returns a fresh identifier
func (r *Resolver) Mint() uuid.UUID {
	return r.mint()
}

// Format returns canonical identifier text
func Format(id uuid.UUID) string {
	return id.String()
}

// Parse parses canonical identifier, surrounding braces are accepted
func Parse(text string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(text))
}

// lines reads URL content split into lines, ok is false when the artifact cannot be read
func (r *Resolver) lines(ctx context.Context, URL string) ([]string, bool) {
	if URL == "" {
		return nil, false
	}
	exists, err := r.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return nil, false
	}
	data, err := r.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		r.logger.Debug("prior artifact unreadable", "url", URL, "error", err)
		return nil, false
	}
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, true
}

func (r *Resolver) minted(reason, URL string, attrs ...any) uuid.UUID {
	id := r.mint()
	r.logger.Debug("minted identifier", append([]any{"reason", reason, "url", URL, "id", Format(id)}, attrs...)...)
	return id
}
