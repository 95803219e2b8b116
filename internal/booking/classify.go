package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"turfBooker/internal/models"
	"turfBooker/internal/slots"
)

type Mode string

const (
	ModeUpcoming Mode = "UPCOMING"
	ModePrevious Mode = "PREVIOUS"
)

var ErrUnknownMode = errors.New("booking type must be UPCOMING or PREVIOUS")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToUpper(strings.TrimSpace(s))); m {
	case ModeUpcoming, ModePrevious:
		return m, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownMode, s)
	}
}

// TimeOfDay returns the minutes since midnight of t in its own location.
func TimeOfDay(t time.Time) int {
	return t.Hour()*slots.MinutesPerHour + t.Minute()
}

// Classify keeps the bookings starting after now (ModeUpcoming) or before
// now (ModePrevious). Only the time of day is compared; a booking starting
// exactly at now is in neither set.
func Classify(bookings []models.Booking, now int, mode Mode) ([]models.Booking, error) {
	if mode != ModeUpcoming && mode != ModePrevious {
		return nil, fmt.Errorf("%w: got %q", ErrUnknownMode, mode)
	}

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		start, err := slots.ToMinutes(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}

		if (mode == ModeUpcoming && start > now) || (mode == ModePrevious && start < now) {
			out = append(out, b)
		}
	}

	return out, nil
}

// Live returns the first booking whose range contains now, or nil. The
// end is normalized past midnight but now is not, so the after-midnight
// tail of a wrapping booking is never live; Overlaps still treats that
// tail as occupied.
func Live(bookings []models.Booking, now int) (*models.Booking, error) {
	for i := range bookings {
		start, err := slots.ToMinutes(bookings[i].StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", bookings[i].ID, err)
		}

		end, err := slots.ToMinutes(bookings[i].EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", bookings[i].ID, err)
		}

		if start <= now && now <= slots.NormalizeEnd(start, end) {
			b := bookings[i]
			return &b, nil
		}
	}

	return nil, nil
}
