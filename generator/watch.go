package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/viant/vsproj/config"
	"github.com/viant/vsproj/target"
)

// DefaultDebounce delays regeneration after the last relevant change
const DefaultDebounce = 200 * time.Millisecond

var artifactExts = map[string]bool{".vcxproj": true, ".filters": true, ".user": true, ".sln": true}

// Watch generates targets under root, then regenerates them whenever a target description
// changes or a file is added, removed or renamed below root. A change of a configuration file
// below root reloads configuration before regeneration, a configuration that fails to load
// leaves the current one in place. Every batch outcome is passed to onBatch. Watch returns
// when ctx is done.
func (g *Generator) Watch(ctx context.Context, root, workspaceURL string, onBatch func(batch *Batch, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err = watchDir(watcher, root); err != nil {
		return fmt.Errorf("failed to watch %v: %w", root, err)
	}
	regenerate := func() {
		targets, err := g.Discover(ctx, root)
		if err != nil {
			onBatch(nil, err)
			return
		}
		onBatch(g.GenerateAll(ctx, targets, workspaceURL))
	}
	regenerate()

	reload := g.reload
	if reload == nil {
		reload = func() (*config.Config, error) {
			return config.Load(config.Locate(root))
		}
	}
	configChanged := false
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDir(watcher, event.Name); err != nil {
						g.logger.Warn("failed to watch directory", "dir", event.Name, "error", err)
					}
				}
			}
			if !relevant(event, g.config.ProjectExt) {
				continue
			}
			g.logger.Debug("change detected", "name", event.Name, "op", event.Op.String())
			if filepath.Base(event.Name) == config.FileName {
				configChanged = true
			}
			pending = time.After(g.debounce)
		case <-pending:
			pending = nil
			if configChanged {
				configChanged = false
				cfg, err := reload()
				if err != nil {
					g.logger.Warn("failed to reload config, keeping current", "error", err)
				} else {
					g.apply(cfg)
					g.logger.Info("config reloaded", "platform", cfg.Platform, "msbuild_platform", cfg.MSBuildPlatform)
				}
			}
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.logger.Warn("watcher error", "error", err)
		}
	}
}

// relevant returns true for changes that can alter generated artifacts: description and
// configuration edits and any file appearing or disappearing. Content edits of source files and
// artifact writes are not.
func relevant(event fsnotify.Event, projectExt string) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if name == config.FileName {
		return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
	}
	if ext := filepath.Ext(name); artifactExts[ext] || ext == projectExt {
		return false
	}
	if strings.HasSuffix(name, target.DescriptionSuffix) {
		return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
	}
	return event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
