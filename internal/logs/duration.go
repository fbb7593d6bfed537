package logs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minInterval is the floor for the poll interval, to keep clients from
// hammering the logs endpoint.
const minInterval = 2

// ParseSince parses a relative duration of the form "<n><unit>" where unit
// is 's', 'm', 'h' or 'd'. Compound forms like "1h30m" are not supported.
func ParseSince(arg string) (time.Duration, error) {
	units := []struct {
		suffix string
		unit   time.Duration
	}{
		{"s", time.Second},
		{"m", time.Minute},
		{"h", time.Hour},
		{"d", 24 * time.Hour},
	}

	for _, u := range units {
		num, ok := strings.CutSuffix(arg, u.suffix)
		if !ok {
			continue
		}
		value, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", arg, err)
		}
		return time.Duration(value) * u.unit, nil
	}

	return 0, fmt.Errorf(`invalid duration %q: supported formats are "300s", "5m", "4h" or "1d"; formats such as "1h30m" or "30min" are not supported`, arg)
}

// ParseInterval parses the poll interval in seconds, rejecting values below
// the 2 second floor.
func ParseInterval(arg string) (time.Duration, error) {
	secs, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", arg, err)
	}
	if secs < minInterval {
		return 0, fmt.Errorf("interval cannot be less than %d seconds", minInterval)
	}
	return time.Duration(secs) * time.Second, nil
}
