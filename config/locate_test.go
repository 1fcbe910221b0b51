package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vsproj/config"
)

func TestLocate(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "yield", "poll")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	location := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(location, []byte("platform: win32\n"), 0o644))
	file := filepath.Join(nested, "poll.target.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: poll\n"), 0o644))

	assert.Equal(t, location, config.Locate(nested))
	assert.Equal(t, location, config.Locate(file))
	assert.Equal(t, location, config.Locate(root))

	closer := filepath.Join(root, "src", config.FileName)
	require.NoError(t, os.WriteFile(closer, []byte("platform: posix\n"), 0o644))
	assert.Equal(t, closer, config.Locate(nested))
}
