package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"github.com/viant/vsproj/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	location := filepath.Join(t.TempDir(), "vsproj.yaml")
	require.NoError(t, os.WriteFile(location, []byte("platform: posix\nproject_ext: vcxproj\nplatforms: [posix, win32]\nlog_level: debug\n"), 0o644))
	t.Setenv("VSPROJ_MSBUILD_PLATFORM", "x64")

	cfg, err := config.Load(location)
	require.NoError(t, err)
	assert.Equal(t, "posix", cfg.Platform)
	assert.Equal(t, "x64", cfg.MSBuildPlatform)
	assert.Equal(t, ".vcxproj", cfg.ProjectExt)
	assert.Equal(t, []string{"posix", "win32"}, cfg.Platforms)

	var buf bytes.Buffer
	cfg.Logger(&buf).Debug("level check")
	assert.Contains(t, buf.String(), "level check")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestConfig_Level(t *testing.T) {
	cfg := &config.Config{LogLevel: "bogus"}
	cfg.Init()
	assert.Equal(t, "bogus", cfg.LogLevel)
	assert.Equal(t, "INFO", cfg.Level().String())
}

func TestLoadWithFlags(t *testing.T) {
	location := filepath.Join(t.TempDir(), "vsproj.yaml")
	require.NoError(t, os.WriteFile(location, []byte("platform: posix\nmsbuild_platform: ARM\n"), 0o644))
	t.Setenv("VSPROJ_PLATFORM", "linux")

	flags := pflag.NewFlagSet("vsproj", pflag.ContinueOnError)
	flags.String("platform", "", "")
	flags.String("msbuild-platform", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--msbuild-platform", "x64"}))

	cfg, err := config.LoadWithFlags(location, flags)
	require.NoError(t, err)
	assert.Equal(t, "linux", cfg.Platform, "unset flag keeps env value")
	assert.Equal(t, "x64", cfg.MSBuildPlatform)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}
