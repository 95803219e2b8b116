package storage

import (
	"testing"

	"turfBooker/internal/models"
	"turfBooker/internal/slots"

	"github.com/stretchr/testify/assert"
)

func TestCheckConflict(t *testing.T) {
	t.Parallel()

	existing := []models.Booking{
		{ID: "a", BookerName: "Asha", StartTime: "10:00", EndTime: "12:00"},
		{ID: "b", BookerName: "Ravi", StartTime: "23:00", EndTime: "01:00"},
	}

	testCases := []struct {
		name    string
		booking models.Booking
		wantErr error
	}{
		{
			name:    "Free slot",
			booking: models.Booking{ID: "new", StartTime: "12:00", EndTime: "13:00"},
		},
		{
			name:    "Overlapping slot",
			booking: models.Booking{ID: "new", StartTime: "11:00", EndTime: "13:00"},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "Overlaps midnight booking",
			booking: models.Booking{ID: "new", StartTime: "00:30", EndTime: "01:30"},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "Same booking is ignored",
			booking: models.Booking{ID: "a", StartTime: "10:00", EndTime: "11:00"},
		},
		{
			name:    "Malformed time",
			booking: models.Booking{ID: "new", StartTime: "1000", EndTime: "11:00"},
			wantErr: slots.ErrInvalidTimeFormat,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckConflict(existing, tc.booking)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `%ravi%`, LikePattern("ravi"))
	assert.Equal(t, `%50\%\_off%`, LikePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, LikePattern(`a\b`))
}
