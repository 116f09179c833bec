package countdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFormatTime covers zero padding and minute overflow past an hour.
func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		0:    "00:00",
		9:    "00:09",
		65:   "01:05",
		3599: "59:59",
		3600: "60:00",
		6000: "100:00",
	}
	for seconds, want := range cases {
		require.Equal(t, want, FormatTime(seconds))
	}
}

// TestParseDuration checks accepted and rejected raw input.
func TestParseDuration(t *testing.T) {
	t.Parallel()

	accepted := map[string]int{
		"10":     10,
		" 42 ":   42,
		"+5":     5,
		"12abc":  12,
		"1.9":    1,
		"007":    7,
		"3600\n": 3600,
	}
	for raw, want := range accepted {
		got, err := ParseDuration(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "abc", "-5", "0", "+", "-", " ", "99999999999999999999999"} {
		_, err := ParseDuration(raw)
		require.ErrorIs(t, err, ErrInvalidDuration, raw)
	}
}
