package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings are the runtime options of the timer program. Command-line flags
// override values loaded from the environment.
type Settings struct {
	Theme     string
	AltScreen bool
	Debug     bool
	LogPath   string
}

func Defaults() Settings {
	return Settings{
		Theme:     DefaultTheme,
		AltScreen: true,
	}
}

// Load returns Defaults overridden by any COUNTDOWN_* environment variables.
// Unparsable booleans are ignored.
func Load() Settings {
	s := Defaults()
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		s.Theme = strings.ToLower(v)
	}
	if v, ok := envBool(EnvAltScreen); ok {
		s.AltScreen = v
	}
	if v, ok := envBool(EnvDebug); ok {
		s.Debug = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		s.LogPath = v
	}
	return s
}

func envBool(key string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
