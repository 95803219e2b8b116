package getBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	Booking(ctx context.Context, turfID, id string) (*models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		turfID := chi.URLParam(r, "turfID")
		bookingID := chi.URLParam(r, "bookingID")
		if turfID == "" || bookingID == "" {
			log.Error("turf id and booking id are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("turf id and booking id are required"))
			return
		}

		if uuid.Validate(turfID) != nil || uuid.Validate(bookingID) != nil {
			log.Error("invalid id format", slog.String("turf_id", turfID), slog.String("booking_id", bookingID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid id format"))
			return
		}

		b, err := getter.Booking(r.Context(), turfID, bookingID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking not found", slog.String("booking_id", bookingID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
