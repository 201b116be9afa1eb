package config

// Text shown by the timer screen.
const (
	Title            = "Countdown Timer"
	InputPlaceholder = "Enter Timer In Seconds"
	StartLabel       = "Start"
	PauseLabel       = "Pause"
	ResetLabel       = "Reset"
	LogoGlyph        = "O"
	FooterText       = "© 2024 Countdown Timer. All Rights Reserved."
)

// Layout constants.
const (
	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth = 60

	// InputWidth is the visible width of the seconds input.
	InputWidth = 28

	// ProgressWidth is the preferred width of the remaining-time bar.
	ProgressWidth = 32

	// CompactModeThreshold stacks the buttons vertically below this width.
	CompactModeThreshold = 44

	// ButtonGap separates buttons laid out in a row.
	ButtonGap = 2

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxInputChars is the maximum length of the seconds input.
	MaxInputChars = 12
)
