// Package config loads generator settings from defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/viant/vsproj/source"
)

// EnvPrefix prefixes environment overrides, e.g. VSPROJ_PLATFORM
const EnvPrefix = "VSPROJ_"

// Default configuration values.
const (
	DefaultPlatform        = "win32"
	DefaultMSBuildPlatform = "Win32"
	DefaultProjectExt      = ".vcxproj"
	DefaultToolsVersion    = "4.0"
	DefaultLogLevel        = "info"
)

// Config represents generator settings
type Config struct {
	// Platform is matched against file platform affinity and platform lists
	Platform string `koanf:"platform"`
	// MSBuildPlatform is the platform name written to configuration blocks
	MSBuildPlatform string `koanf:"msbuild_platform"`
	ProjectExt      string `koanf:"project_ext"`
	ToolsVersion    string `koanf:"tools_version"`
	// Platforms lists directory names restricting files to one platform
	Platforms []string `koanf:"platforms"`
	LogLevel  string   `koanf:"log_level"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Platform:        DefaultPlatform,
		MSBuildPlatform: DefaultMSBuildPlatform,
		ProjectExt:      DefaultProjectExt,
		ToolsVersion:    DefaultToolsVersion,
		Platforms:       append([]string{}, source.Platforms...),
		LogLevel:        DefaultLogLevel,
	}
}

// Load loads configuration. Precedence (highest to lowest): env vars > config file > defaults.
// An empty location skips the file.
func Load(location string) (*Config, error) {
	return LoadWithFlags(location, nil)
}

// LoadWithFlags loads configuration like Load, explicitly set flags override every other source.
// Flag names are kebab-case config keys, e.g. --msbuild-platform sets msbuild_platform.
func LoadWithFlags(location string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	defaults := DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"platform":         defaults.Platform,
		"msbuild_platform": defaults.MSBuildPlatform,
		"project_ext":      defaults.ProjectExt,
		"tools_version":    defaults.ToolsVersion,
		"platforms":        defaults.Platforms,
		"log_level":        defaults.LogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if location != "" {
		if err := k.Load(file.Provider(location), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", location, err)
		}
	}
	// VSPROJ_MSBUILD_PLATFORM -> msbuild_platform
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Init()
	return &cfg, nil
}

// Init applies defaults to unset values
func (c *Config) Init() {
	if c.Platform == "" {
		c.Platform = DefaultPlatform
	}
	if c.MSBuildPlatform == "" {
		c.MSBuildPlatform = DefaultMSBuildPlatform
	}
	if c.ProjectExt == "" {
		c.ProjectExt = DefaultProjectExt
	}
	if !strings.HasPrefix(c.ProjectExt, ".") {
		c.ProjectExt = "." + c.ProjectExt
	}
	if c.ToolsVersion == "" {
		c.ToolsVersion = DefaultToolsVersion
	}
	if len(c.Platforms) == 0 {
		c.Platforms = append([]string{}, source.Platforms...)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Level returns slog level of LogLevel
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger creates a text logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
