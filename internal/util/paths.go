package util

import (
	"os"
	"path/filepath"
	"strings"
)

// StateDir returns the per-user directory for an application's logs.
func StateDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "state", app)
}

// LogPath resolves the debug log location, preferring an explicit path.
func LogPath(app, explicit, fileName string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return expandHome(p)
	}
	return filepath.Join(StateDir(app), fileName)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
