package logs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjindal/cloud-plugin/internal/logs"
)

func TestParseSince(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"300s", 300 * time.Second},
		{"5m", 5 * time.Minute},
		{"4h", 4 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"0s", 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := logs.ParseSince(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSinceRejectsUnsupportedFormats(t *testing.T) {
	for _, input := range []string{
		"1h30m", // compound forms not supported
		"30min",
		"abc",
		"10", // missing unit suffix
		"",
		"-5s",
		"1.5h",
		"d",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := logs.ParseSince(input)
			assert.Error(t, err)
		})
	}
}

func TestParseInterval(t *testing.T) {
	got, err := logs.ParseInterval("2")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, got)

	got, err = logs.ParseInterval("100")
	require.NoError(t, err)
	assert.Equal(t, 100*time.Second, got)
}

func TestParseIntervalRejectsBelowFloor(t *testing.T) {
	for _, input := range []string{"0", "1"} {
		_, err := logs.ParseInterval(input)
		assert.Error(t, err, "interval %q should be rejected", input)
	}
}

func TestParseIntervalRejectsNonNumbers(t *testing.T) {
	for _, input := range []string{"", "abc", "-2", "2s"} {
		_, err := logs.ParseInterval(input)
		assert.Error(t, err, "interval %q should be rejected", input)
	}
}
