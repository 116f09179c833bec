package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned by ParseDuration for input that is not a
// strictly positive integer.
var ErrInvalidDuration = errors.New("duration must be a positive integer")

// ParseDuration reads the leading integer of raw, the way number inputs
// are usually read: surrounding spaces are ignored, an optional sign is
// accepted and anything after the digits is dropped ("12s" is 12).
func ParseDuration(raw string) (int, error) {
	text := strings.TrimSpace(raw)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrInvalidDuration)
	}

	value, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrInvalidDuration)
	}

	if value <= 0 {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrInvalidDuration)
	}

	return value, nil
}

// FormatTime renders seconds as MM:SS. Minutes are not wrapped into hours,
// so 3600 renders as "60:00".
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
