// Package booking implements the turf booking rules: availability, booking
// validation, classification and statistics. It keeps no state between
// calls; the repository is the only source of truth.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turfBooker/internal/models"
	"turfBooker/internal/slots"
	"turfBooker/internal/storage"
)

var (
	ErrOutsideHours = errors.New("booking is outside the turf's operating hours")
	ErrClosedDay    = errors.New("turf is closed on this day")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Repository
type Repository interface {
	Turf(ctx context.Context, id string) (*models.Turf, error)
	SaveBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error)
	DeleteBooking(ctx context.Context, turfID, id string) (*models.Booking, error)
	Booking(ctx context.Context, turfID, id string) (*models.Booking, error)
	Bookings(ctx context.Context, filter storage.BookingFilter) ([]models.Booking, error)
	BookingsByDate(ctx context.Context, turfID string, date models.Date) ([]models.Booking, error)
	CountBookings(ctx context.Context, filter storage.BookingFilter) (int, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
}

// New builds a Service. now is the wall clock and loc the facility
// timezone used to derive today's date and the current time of day.
func New(repo Repository, now func() time.Time, loc *time.Location) *Service {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Service{repo: repo, now: now, loc: loc}
}

func (s *Service) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) Today() models.Date {
	return models.DateOf(s.localNow())
}

func (s *Service) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "booking.Service.CreateBooking"

	turf, err := s.repo.Turf(ctx, b.TurfID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = Validate(turf, b); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	b.CreatedAt = s.now().UTC()

	saved, err := s.repo.SaveBooking(ctx, b)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Service) UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	const op = "booking.Service.UpdateBooking"

	turf, err := s.repo.Turf(ctx, b.TurfID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = Validate(turf, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateBooking(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Service) DeleteBooking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "booking.Service.DeleteBooking"

	deleted, err := s.repo.DeleteBooking(ctx, turfID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Service) Booking(ctx context.Context, turfID, id string) (*models.Booking, error) {
	const op = "booking.Service.Booking"

	b, err := s.repo.Booking(ctx, turfID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// Validate checks a booking against its own invariants and the turf's
// opening days and hours.
func Validate(turf *models.Turf, b models.Booking) error {
	start, err := slots.ToMinutes(b.StartTime)
	if err != nil {
		return err
	}

	end, err := slots.ToMinutes(b.EndTime)
	if err != nil {
		return err
	}

	if start == end {
		return fmt.Errorf("%w: start and end are both %s", slots.ErrInvalidRange, b.StartTime)
	}

	duration := slots.NormalizeEnd(start, end) - start
	if duration != b.SlotTime*slots.MinutesPerHour {
		return fmt.Errorf("%w: %s-%s does not last %d hour(s)", slots.ErrInvalidRange, b.StartTime, b.EndTime, b.SlotTime)
	}

	if !turf.OpenOn(b.SlotDate) {
		return fmt.Errorf("%w: %s", ErrClosedDay, b.SlotDate)
	}

	open, closing, err := slots.Window(turf.OpenAt, turf.CloseAt)
	if err != nil {
		return err
	}

	if start < open {
		start += slots.MinutesPerDay
	}

	if start+duration > closing {
		return fmt.Errorf("%w: open %s-%s", ErrOutsideHours, turf.OpenAt, turf.CloseAt)
	}

	return nil
}

type ListQuery struct {
	TurfID     string
	Mode       Mode
	SlotDate   models.Date
	BookerName string
	// BookingDate filters by the local day the booking was made on.
	BookingDate models.Date
	Offset      int
	Limit       int
}

// ListBookings returns the upcoming or previous bookings of a day (today
// when SlotDate is zero), paginated after classification.
func (s *Service) ListBookings(ctx context.Context, q ListQuery) ([]models.Booking, error) {
	const op = "booking.Service.ListBookings"

	filter := storage.BookingFilter{
		TurfID:     q.TurfID,
		SlotDate:   q.SlotDate,
		BookerName: q.BookerName,
	}

	if filter.SlotDate.IsZero() {
		filter.SlotDate = s.Today()
	}

	if !q.BookingDate.IsZero() {
		filter.CreatedFrom = q.BookingDate.In(s.loc)
		filter.CreatedTo = q.BookingDate.AddDays(1).In(s.loc)
	}

	bookings, err := s.repo.Bookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	classified, err := Classify(bookings, TimeOfDay(s.localNow()), q.Mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paginate(classified, q.Offset, q.Limit), nil
}

func paginate(bookings []models.Booking, offset, limit int) []models.Booking {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(bookings) {
		return []models.Booking{}
	}

	bookings = bookings[offset:]
	if limit > 0 && limit < len(bookings) {
		bookings = bookings[:limit]
	}

	return bookings
}

type Statistics struct {
	Yesterday int             `json:"yesterday"`
	Today     int             `json:"today"`
	Tomorrow  int             `json:"tomorrow"`
	Live      *models.Booking `json:"live,omitempty"`
}

// Statistics counts the bookings of yesterday, today and tomorrow and
// reports the booking in progress, if any.
func (s *Service) Statistics(ctx context.Context, turfID string) (Statistics, error) {
	const op = "booking.Service.Statistics"

	now := s.localNow()
	today := models.DateOf(now)

	var stats Statistics

	counts := []struct {
		date models.Date
		dst  *int
	}{
		{today.AddDays(-1), &stats.Yesterday},
		{today, &stats.Today},
		{today.AddDays(1), &stats.Tomorrow},
	}

	for _, c := range counts {
		n, err := s.repo.CountBookings(ctx, storage.BookingFilter{TurfID: turfID, SlotDate: c.date})
		if err != nil {
			return Statistics{}, fmt.Errorf("%s: %w", op, err)
		}
		*c.dst = n
	}

	todays, err := s.repo.BookingsByDate(ctx, turfID, today)
	if err != nil {
		return Statistics{}, fmt.Errorf("%s: %w", op, err)
	}

	stats.Live, err = Live(todays, TimeOfDay(now))
	if err != nil {
		return Statistics{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
