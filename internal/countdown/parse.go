package countdown

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSeconds bounds parsed durations so they always fit in an int.
const MaxSeconds = math.MaxInt32

// ParseSeconds converts input field text into whole seconds. Empty or
// unparsable text yields 0. Fractions are truncated toward zero and negative
// values are returned as-is. Unsigned 0x, 0o and 0b integers are accepted.
func ParseSeconds(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n, err := ParseSecondsStrict(text)
	if err != nil {
		return 0
	}
	return n
}

// ParseSecondsStrict is ParseSeconds for callers that need to reject bad input.
// The returned error wraps ErrInvalidDuration.
func ParseSecondsStrict(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, durationErr(text, fmt.Errorf("%w: empty", ErrInvalidDuration))
	}
	if hasRadixPrefix(s) {
		return parseRadix(text, s)
	}
	if unsigned := strings.TrimLeft(s, "+-"); unsigned != s && hasRadixPrefix(unsigned) {
		return 0, durationErr(text, ErrInvalidDuration)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, durationErr(text, ErrInvalidDuration)
	}
	switch {
	case f > MaxSeconds:
		f = MaxSeconds
	case f < -MaxSeconds:
		f = -MaxSeconds
	}
	return int(f), nil
}

func hasRadixPrefix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// parseRadix handles prefixed integers; hex floats such as 0x1p4 are invalid.
func parseRadix(text, s string) (int, error) {
	if strings.Contains(s, "_") {
		return 0, durationErr(text, ErrInvalidDuration)
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if errors.Is(err, strconv.ErrRange) {
		return MaxSeconds, nil
	}
	if err != nil {
		return 0, durationErr(text, ErrInvalidDuration)
	}
	if n > MaxSeconds {
		return MaxSeconds, nil
	}
	return int(n), nil
}
