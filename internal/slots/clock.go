// Package slots holds the time-of-day arithmetic behind turf availability:
// HH:MM parsing, slot generation over operating hours and range overlap.
// Every function is pure.
package slots

import (
	"errors"
	"fmt"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrInvalidRange      = errors.New("invalid time range")
	ErrInvalidDuration   = errors.New("slot duration must be a positive number of hours")
)

// ToMinutes converts a 24-hour "HH:MM" clock time to minutes since midnight.
func ToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
		}
	}

	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')

	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	return hours*MinutesPerHour + mins, nil
}

// NormalizeEnd rolls end over midnight when it falls before start.
func NormalizeEnd(start, end int) int {
	if end < start {
		return end + MinutesPerDay
	}
	return end
}

// FormatMinutes renders a minute offset as "HH:MM". Offsets past midnight
// wrap, so 1440 renders as "00:00".
func FormatMinutes(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/MinutesPerHour, m%MinutesPerHour)
}

// Label renders a minute offset on a 12-hour clock, e.g. "8:00 AM".
func Label(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hour := m / MinutesPerHour

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, m%MinutesPerHour, suffix)
}

// Window returns the operating window of a facility in minutes. A close time
// of "00:00" always means end of day; any other close time before open rolls
// over midnight.
func Window(openAt, closeAt string) (int, int, error) {
	open, err := ToMinutes(openAt)
	if err != nil {
		return 0, 0, err
	}

	closing, err := ToMinutes(closeAt)
	if err != nil {
		return 0, 0, err
	}

	if closing == 0 {
		return open, MinutesPerDay, nil
	}

	if closing == open {
		return 0, 0, fmt.Errorf("%w: opens and closes at %s", ErrInvalidRange, openAt)
	}

	return open, NormalizeEnd(open, closing), nil
}
