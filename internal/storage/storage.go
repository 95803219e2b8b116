package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"turfBooker/internal/models"
	"turfBooker/internal/slots"
)

var (
	ErrTurfNotFound    = errors.New("turf not found")
	ErrTurfExists      = errors.New("owner already has a turf")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot overlaps an existing booking")
)

// BookingFilter narrows booking queries. Zero fields are ignored.
type BookingFilter struct {
	TurfID     string
	SlotDate   models.Date
	BookerName string

	// CreatedFrom and CreatedTo bound created_at as [from, to).
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// CheckConflict fails with ErrSlotTaken when b overlaps any of existing,
// ignoring the entry that shares b's ID.
func CheckConflict(existing []models.Booking, b models.Booking) error {
	for _, other := range existing {
		if other.ID == b.ID {
			continue
		}

		overlap, err := slots.Overlaps(b.StartTime, b.EndTime, other.StartTime, other.EndTime)
		if err != nil {
			return fmt.Errorf("compare with booking %s: %w", other.ID, err)
		}

		if overlap {
			return fmt.Errorf("%w: %s-%s is booked by %s", ErrSlotTaken, other.StartTime, other.EndTime, other.BookerName)
		}
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns s into a substring LIKE pattern that matches s
// literally. Queries using it must declare ESCAPE '\'.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
