package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimePath = ".pluto"

// GetRuntimePath reads PLUTO_RUNTIME_PATH directly so the .env file inside
// the runtime directory can be found before the config is parsed.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("PLUTO_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimePath
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
