package config

import "time"

// Timer settings.
const (
	TickInterval = time.Second
)

// Application settings.
const (
	AppName      = "countdown"
	LogFileName  = "countdown.log"
	DefaultTheme = "teal"
)

// Environment variables read by Load.
const (
	EnvTheme     = "COUNTDOWN_THEME"
	EnvAltScreen = "COUNTDOWN_ALT_SCREEN"
	EnvDebug     = "COUNTDOWN_DEBUG"
	EnvLogFile   = "COUNTDOWN_LOG"
)
