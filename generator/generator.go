// Package generator produces IDE project, filters and solution artifacts for build targets,
// reusing identifiers of previously generated artifacts.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/viant/afs"
	"github.com/viant/vsproj/artifact"
	"github.com/viant/vsproj/config"
	"github.com/viant/vsproj/identity"
	"github.com/viant/vsproj/reference"
	"github.com/viant/vsproj/target"
)

// Generator generates artifacts for targets
type Generator struct {
	fs       afs.Service
	config   *config.Config
	logger   *slog.Logger
	emitter  artifact.Emitter
	idOption identity.Option
	ids      *identity.Resolver
	refs     *reference.Resolver
	writer   *writer
	debounce time.Duration
	reload   func() (*config.Config, error)
}

// Option configures Generator
type Option func(g *Generator)

// WithFS sets file system service
func WithFS(fs afs.Service) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithEmitter sets artifact emitter
func WithEmitter(emitter artifact.Emitter) Option {
	return func(g *Generator) {
		g.emitter = emitter
	}
}

// WithIdentity sets identity resolver option, e.g. identity.WithMint
func WithIdentity(option identity.Option) Option {
	return func(g *Generator) {
		g.idOption = option
	}
}

// WithDebounce sets delay between the last change and regeneration in Watch
func WithDebounce(debounce time.Duration) Option {
	return func(g *Generator) {
		g.debounce = debounce
	}
}

// WithReload sets configuration loader used by Watch when the configuration file changes,
// by default Watch loads the nearest configuration file above the watched root.
func WithReload(reload func() (*config.Config, error)) Option {
	return func(g *Generator) {
		g.reload = reload
	}
}

// New creates a generator, nil cfg uses default configuration
func New(cfg *config.Config, options ...Option) *Generator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ret := &Generator{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ret.debounce <= 0 {
		ret.debounce = DefaultDebounce
	}
	if ret.emitter == nil {
		ret.emitter = artifact.NewMSBuild()
	}
	idOptions := []identity.Option{identity.WithLogger(ret.logger)}
	if ret.idOption != nil {
		idOptions = append(idOptions, ret.idOption)
	}
	ret.ids = identity.New(ret.fs, idOptions...)
	ret.writer = newWriter(ret.fs, ret.logger)
	ret.apply(cfg)
	return ret
}

// apply switches generator to cfg, references are resolved with its project extension
func (g *Generator) apply(cfg *config.Config) {
	cfg.Init()
	g.config = cfg
	g.refs = reference.New(g.fs, g.ids, cfg.ProjectExt, g.logger)
}

// Config returns generator configuration
func (g *Generator) Config() *config.Config {
	return g.config
}

// Discover loads target descriptions found under root, descriptions without own platform
// directory names use the configured ones.
func (g *Generator) Discover(ctx context.Context, root string) ([]target.Target, error) {
	descriptions, err := target.Discover(ctx, g.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover targets in %v: %w", root, err)
	}
	result := make([]target.Target, 0, len(descriptions))
	for _, description := range descriptions {
		if len(description.Platforms) == 0 {
			description.Platforms = g.config.Platforms
		}
		result = append(result, description)
	}
	g.logger.Info("targets discovered", "root", root, "count", len(result))
	return result, nil
}
