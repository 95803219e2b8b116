package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfBooker/internal/booking/mocks"
	"turfBooker/internal/models"
	"turfBooker/internal/slots"
	"turfBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBooking(start, end string, hours int) models.Booking {
	return models.Booking{
		TurfID:     turfID,
		BookerName: "Asha",
		SlotDate:   christmas,
		StartTime:  start,
		EndTime:    end,
		SlotTime:   hours,
		Amount:     1500,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	overnight := &models.Turf{OpenAt: "18:00", CloseAt: "02:00"}
	weekends := &models.Turf{OpenAt: "08:00", CloseAt: "00:00", DaysOpen: []int{6, 7}}

	testCases := []struct {
		name    string
		turf    *models.Turf
		booking models.Booking
		wantErr error
	}{
		{name: "Valid", turf: defaultTurf(), booking: newBooking("10:00", "12:00", 2)},
		{name: "Ends at midnight", turf: defaultTurf(), booking: newBooking("22:00", "00:00", 2)},
		{name: "Overnight turf after midnight", turf: overnight, booking: newBooking("00:30", "01:30", 1)},
		{name: "Overnight turf across midnight", turf: overnight, booking: newBooking("23:00", "01:00", 2)},
		{name: "Bad start", turf: defaultTurf(), booking: newBooking("10", "12:00", 2), wantErr: slots.ErrInvalidTimeFormat},
		{name: "Bad end", turf: defaultTurf(), booking: newBooking("10:00", "25:00", 2), wantErr: slots.ErrInvalidTimeFormat},
		{name: "Empty range", turf: defaultTurf(), booking: newBooking("10:00", "10:00", 1), wantErr: slots.ErrInvalidRange},
		{name: "Slot time mismatch", turf: defaultTurf(), booking: newBooking("10:00", "12:00", 1), wantErr: slots.ErrInvalidRange},
		{name: "Before opening", turf: defaultTurf(), booking: newBooking("07:00", "08:00", 1), wantErr: ErrOutsideHours},
		{name: "Past closing", turf: overnight, booking: newBooking("01:00", "03:00", 2), wantErr: ErrOutsideHours},
		{name: "Closed day", turf: weekends, booking: newBooking("10:00", "11:00", 1), wantErr: ErrClosedDay},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.turf, tc.booking)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 12, 20, 9, 30, 0, 0, time.UTC)
	in := newBooking("10:00", "12:00", 2)

	repo := mocks.NewRepository(t)
	repo.On("Turf", mock.Anything, turfID).Return(defaultTurf(), nil)
	repo.On("SaveBooking", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.CreatedAt.Equal(now) && b.StartTime == "10:00"
	})).Return(func(_ context.Context, b models.Booking) (models.Booking, error) {
		b.ID = "new-id"
		return b, nil
	})

	saved, err := New(repo, fixedClock(now), time.UTC).CreateBooking(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "new-id", saved.ID)
	assert.Equal(t, now, saved.CreatedAt)
}

func TestCreateBooking_Errors(t *testing.T) {
	t.Parallel()

	t.Run("Invalid booking never reaches storage", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewRepository(t)
		repo.On("Turf", mock.Anything, turfID).Return(defaultTurf(), nil)

		_, err := New(repo, nil, time.UTC).CreateBooking(context.Background(), newBooking("10:00", "11:00", 2))
		assert.ErrorIs(t, err, slots.ErrInvalidRange)
	})

	t.Run("Slot taken", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewRepository(t)
		repo.On("Turf", mock.Anything, turfID).Return(defaultTurf(), nil)
		repo.On("SaveBooking", mock.Anything, mock.Anything).Return(models.Booking{}, storage.ErrSlotTaken)

		_, err := New(repo, nil, time.UTC).CreateBooking(context.Background(), newBooking("10:00", "11:00", 1))
		assert.ErrorIs(t, err, storage.ErrSlotTaken)
	})

	t.Run("Turf not found", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewRepository(t)
		repo.On("Turf", mock.Anything, turfID).Return(nil, storage.ErrTurfNotFound)

		_, err := New(repo, nil, time.UTC).CreateBooking(context.Background(), newBooking("10:00", "11:00", 1))
		assert.ErrorIs(t, err, storage.ErrTurfNotFound)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Parallel()

	in := newBooking("12:00", "13:00", 1)
	in.ID = "b1"

	repo := mocks.NewRepository(t)
	repo.On("Turf", mock.Anything, turfID).Return(defaultTurf(), nil)
	repo.On("UpdateBooking", mock.Anything, in).Return(&in, nil)

	updated, err := New(repo, nil, time.UTC).UpdateBooking(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "12:00", updated.StartTime)

	missing := mocks.NewRepository(t)
	missing.On("Turf", mock.Anything, turfID).Return(defaultTurf(), nil)
	missing.On("UpdateBooking", mock.Anything, in).Return(nil, storage.ErrBookingNotFound)

	_, err = New(missing, nil, time.UTC).UpdateBooking(context.Background(), in)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestDeleteAndGetBooking(t *testing.T) {
	t.Parallel()

	b := newBooking("12:00", "13:00", 1)
	b.ID = "b1"

	repo := mocks.NewRepository(t)
	repo.On("Booking", mock.Anything, turfID, "b1").Return(&b, nil)
	repo.On("DeleteBooking", mock.Anything, turfID, "b1").Return(&b, nil)
	repo.On("DeleteBooking", mock.Anything, turfID, "b2").Return(nil, storage.ErrBookingNotFound)

	svc := New(repo, nil, time.UTC)

	got, err := svc.Booking(context.Background(), turfID, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	deleted, err := svc.DeleteBooking(context.Background(), turfID, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", deleted.ID)

	_, err = svc.DeleteBooking(context.Background(), turfID, "b2")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestListBookings(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	// 08:30 UTC is 14:00 IST on the same day.
	now := time.Date(2024, 12, 25, 8, 30, 0, 0, time.UTC)

	dayBookings := []models.Booking{
		{ID: "b1", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b2", StartTime: "13:00", EndTime: "14:00"},
		{ID: "b3", StartTime: "14:00", EndTime: "15:00"},
		{ID: "b4", StartTime: "15:00", EndTime: "16:00"},
		{ID: "b5", StartTime: "17:00", EndTime: "18:00"},
		{ID: "b6", StartTime: "19:00", EndTime: "20:00"},
	}

	testCases := []struct {
		name    string
		query   ListQuery
		filter  storage.BookingFilter
		wantIDs []string
	}{
		{
			name:    "Upcoming today by default",
			query:   ListQuery{TurfID: turfID, Mode: ModeUpcoming},
			filter:  storage.BookingFilter{TurfID: turfID, SlotDate: christmas},
			wantIDs: []string{"b4", "b5", "b6"},
		},
		{
			name:    "Previous",
			query:   ListQuery{TurfID: turfID, Mode: ModePrevious},
			filter:  storage.BookingFilter{TurfID: turfID, SlotDate: christmas},
			wantIDs: []string{"b1", "b2"},
		},
		{
			name:    "Paginated",
			query:   ListQuery{TurfID: turfID, Mode: ModeUpcoming, Offset: 1, Limit: 1},
			filter:  storage.BookingFilter{TurfID: turfID, SlotDate: christmas},
			wantIDs: []string{"b5"},
		},
		{
			name:    "Offset past the end",
			query:   ListQuery{TurfID: turfID, Mode: ModeUpcoming, Offset: 10},
			filter:  storage.BookingFilter{TurfID: turfID, SlotDate: christmas},
			wantIDs: []string{},
		},
		{
			name: "Explicit date, name and booking day",
			query: ListQuery{
				TurfID:      turfID,
				Mode:        ModePrevious,
				SlotDate:    christmas.AddDays(1),
				BookerName:  "asha",
				BookingDate: christmas.AddDays(-5),
			},
			filter: storage.BookingFilter{
				TurfID:      turfID,
				SlotDate:    christmas.AddDays(1),
				BookerName:  "asha",
				CreatedFrom: time.Date(2024, 12, 20, 0, 0, 0, 0, ist),
				CreatedTo:   time.Date(2024, 12, 21, 0, 0, 0, 0, ist),
			},
			wantIDs: []string{"b1", "b2"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewRepository(t)
			repo.On("Bookings", mock.Anything, tc.filter).Return(dayBookings, nil)

			got, err := New(repo, fixedClock(now), ist).ListBookings(context.Background(), tc.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestListBookings_Errors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("timeout")

	repo := mocks.NewRepository(t)
	repo.On("Bookings", mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := New(repo, nil, time.UTC).ListBookings(context.Background(), ListQuery{TurfID: turfID, Mode: ModeUpcoming})
	assert.ErrorIs(t, err, dbErr)
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 12, 25, 19, 15, 0, 0, time.UTC)

	repo := mocks.NewRepository(t)
	repo.On("CountBookings", mock.Anything, storage.BookingFilter{TurfID: turfID, SlotDate: christmas.AddDays(-1)}).Return(3, nil)
	repo.On("CountBookings", mock.Anything, storage.BookingFilter{TurfID: turfID, SlotDate: christmas}).Return(2, nil)
	repo.On("CountBookings", mock.Anything, storage.BookingFilter{TurfID: turfID, SlotDate: christmas.AddDays(1)}).Return(0, nil)
	repo.On("BookingsByDate", mock.Anything, turfID, christmas).Return([]models.Booking{
		{ID: "b1", BookerName: "Asha", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b2", BookerName: "Ravi", StartTime: "19:00", EndTime: "21:00"},
	}, nil)

	stats, err := New(repo, fixedClock(now), time.UTC).Statistics(context.Background(), turfID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Yesterday)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 0, stats.Tomorrow)
	require.NotNil(t, stats.Live)
	assert.Equal(t, "Ravi", stats.Live.BookerName)
}

func TestStatistics_NoLiveBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 12, 25, 7, 0, 0, 0, time.UTC)

	repo := mocks.NewRepository(t)
	repo.On("CountBookings", mock.Anything, mock.Anything).Return(1, nil)
	repo.On("BookingsByDate", mock.Anything, turfID, christmas).Return([]models.Booking{
		{ID: "b1", StartTime: "09:00", EndTime: "10:00"},
	}, nil)

	stats, err := New(repo, fixedClock(now), time.UTC).Statistics(context.Background(), turfID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Today)
	assert.Nil(t, stats.Live)
}

func TestStatistics_RepositoryFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")

	repo := mocks.NewRepository(t)
	repo.On("CountBookings", mock.Anything, mock.Anything).Return(0, dbErr)

	_, err := New(repo, nil, time.UTC).Statistics(context.Background(), turfID)
	assert.ErrorIs(t, err, dbErr)
}
