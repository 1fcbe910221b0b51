// Package reference resolves named target dependencies to sibling project artifacts.
package reference

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/vsproj/identity"
)

// DefaultExt is the project artifact extension
const DefaultExt = ".vcxproj"

const cacheSize = 1024

// Reference represents a resolved dependency on another project artifact
type Reference struct {
	Name    string    // Dependency name
	Include string    // Artifact location relative to the referring directory
	URL     string    // Artifact location
	ID      uuid.UUID // Identifier recovered from the artifact
}

// Resolver resolves dependency names against artifacts already present
type Resolver struct {
	fs     afs.Service
	ids    *identity.Resolver
	ext    string
	logger *slog.Logger
	cache  *lru.Cache[string, uuid.UUID] // artifact version to recovered identifier
}

// New creates a resolver
func New(fs afs.Service, ids *identity.Resolver, ext string, logger *slog.Logger) *Resolver {
	if fs == nil {
		fs = afs.New()
	}
	if ids == nil {
		ids = identity.New(fs)
	}
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cache, _ := lru.New[string, uuid.UUID](cacheSize)
	return &Resolver{fs: fs, ids: ids, ext: ext, logger: logger, cache: cache}
}

// Ext returns artifact extension
func (r *Resolver) Ext() string {
	return r.ext
}

// Resolve returns one reference per name whose artifact exists in referrerDir, in name order.
// Names without an artifact are dropped, they are picked up once their artifact has been generated.
func (r *Resolver) Resolve(ctx context.Context, referrerDir string, names []string) []*Reference {
	var result []*Reference
	seen := map[string]bool{}
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		include := name + r.ext
		URL := url.Join(referrerDir, include)
		if exists, _ := r.fs.Exists(ctx, URL); !exists {
			r.logger.Debug("unresolved reference", "name", name, "url", URL)
			continue
		}
		object, err := r.fs.Object(ctx, URL)
		if err != nil || object.IsDir() {
			r.logger.Debug("unreadable reference", "name", name, "url", URL, "error", err)
			continue
		}
		version := fmt.Sprintf("%v|%d|%d", URL, object.Size(), object.ModTime().UnixNano())
		id, ok := r.cache.Get(version)
		if !ok {
			if id, ok = r.ids.LookupProject(ctx, URL); !ok {
				id = r.ids.Mint()
				r.logger.Warn("referenced artifact has no identifier", "name", name, "url", URL, "id", identity.Format(id))
			}
			r.cache.Add(version, id)
		}
		result = append(result, &Reference{Name: name, Include: include, URL: URL, ID: id})
	}
	return result
}
