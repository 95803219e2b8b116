package booking

import (
	"context"
	"fmt"

	"turfBooker/internal/models"
	"turfBooker/internal/slots"
)

// Availability lists the slots of the given width still free on date,
// in chronological order. A turf closed on that weekday has no slots.
func (s *Service) Availability(ctx context.Context, turfID string, date models.Date, hours int) ([]slots.TimeSlot, error) {
	const op = "booking.Service.Availability"

	if hours <= 0 {
		return nil, fmt.Errorf("%s: %w", op, slots.ErrInvalidDuration)
	}

	turf, err := s.repo.Turf(ctx, turfID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !turf.OpenOn(date) {
		return []slots.TimeSlot{}, nil
	}

	candidates, err := slots.Generate(turf.OpenAt, turf.CloseAt, hours)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.repo.BookingsByDate(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	free, err := FreeSlots(candidates, bookings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return free, nil
}

// FreeSlots drops every candidate that overlaps one of bookings.
func FreeSlots(candidates []slots.TimeSlot, bookings []models.Booking) ([]slots.TimeSlot, error) {
	free := make([]slots.TimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		taken := false
		for _, b := range bookings {
			overlap, err := slots.Overlaps(slot.StartTime, slot.EndTime, b.StartTime, b.EndTime)
			if err != nil {
				return nil, fmt.Errorf("booking %s: %w", b.ID, err)
			}
			if overlap {
				taken = true
				break
			}
		}

		if !taken {
			free = append(free, slot)
		}
	}

	return free, nil
}
