package getBooking

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turfBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"turfBooker/internal/lib/logger/handlers/slogdiscard"
	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	turfID    = "6f1c1b8e-8d7a-4c1e-9a53-0f2f8f0e6b11"
	bookingID = "0b7d3c52-1f0e-4b8a-9d62-7e1f2a3b4c5d"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		stored := &models.Booking{
			ID:         bookingID,
			TurfID:     turfID,
			BookerName: "Asha",
			SlotDate:   models.Date{Year: 2024, Month: time.December, Day: 25},
			StartTime:  "23:00",
			EndTime:    "00:00",
			SlotTime:   1,
			Amount:     1200,
			CreatedAt:  time.Date(2024, 12, 20, 9, 30, 0, 0, time.UTC),
		}

		getter := mocks.NewBookingGetter(t)
		getter.On("Booking", mock.Anything, turfID, bookingID).Return(stored, nil)

		rr := serve(t, New(logger, getter), bookingID)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "OK", resp.Status)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, *stored, *resp.Booking)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		t.Parallel()

		rr := serve(t, New(logger, mocks.NewBookingGetter(t)), "nope")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"invalid id format"}`, rr.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewBookingGetter(t)
		getter.On("Booking", mock.Anything, turfID, bookingID).Return(nil, storage.ErrBookingNotFound)

		rr := serve(t, New(logger, getter), bookingID)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"booking not found"}`, rr.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewBookingGetter(t)
		getter.On("Booking", mock.Anything, turfID, bookingID).Return(nil, errors.New("boom"))

		rr := serve(t, New(logger, getter), bookingID)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get booking"}`, rr.Body.String())
	})
}

func serve(t *testing.T, h http.HandlerFunc, id string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/turfs/{turfID}/bookings/{bookingID}", h)

	req, err := http.NewRequest(http.MethodGet, "/turfs/"+turfID+"/bookings/"+id, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}
