package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves FACTBOT_RUNTIME_PATH, relative paths under $HOME.
func GetRuntimePath() string {
	path := os.Getenv("FACTBOT_RUNTIME_PATH")
	if path == "" {
		path = ".factbot"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
