package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseWallClockTime interprets an "HH:MM" or "HH:MM:SS" string as the next
// occurrence of that wall-clock time relative to now, in now's location. A
// time earlier than now rolls forward to tomorrow. The train feed only
// reports a clock time, so results can misresolve around midnight; that
// matches the upstream feed's own semantics.
func ParseWallClockTime(value string, now time.Time) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return time.Time{}, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	seconds := 0
	if len(parts) > 2 {
		if seconds, err = strconv.Atoi(parts[2]); err != nil {
			return time.Time{}, false
		}
	}

	result := time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, seconds, 0, now.Location())
	if result.Before(now) {
		result = result.AddDate(0, 0, 1)
	}
	return result, true
}

// MinutesUntil returns the number of whole minutes from now until t, rounded
// to the nearest minute.
func MinutesUntil(t, now time.Time) int {
	return int(math.Round(t.Sub(now).Minutes()))
}
