package config

import (
	"os"
	"path/filepath"
)

// FileName is the configuration file name looked up by Locate
const FileName = "vsproj.yaml"

// Locate returns the nearest configuration file walking up from startDir, or empty string
// when no directory up to the filesystem root holds one.
func Locate(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
