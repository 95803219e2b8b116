package listBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Request selects the bookings of one slot date (today when omitted).
// Type is UPCOMING or PREVIOUS.
type Request struct {
	Type        string `json:"type" validate:"required"`
	SlotDate    string `json:"slot_date" validate:"omitempty,datetime=2006-01-02"`
	BookerName  string `json:"booker_name"`
	BookingDate string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Offset      int    `json:"offset" validate:"gte=0"`
	Limit       int    `json:"limit" validate:"gte=0,lte=100"`
}

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	ListBookings(ctx context.Context, q booking.ListQuery) ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		turfID := chi.URLParam(r, "turfID")
		if err := uuid.Validate(turfID); err != nil {
			log.Error("invalid turf id format", slog.String("turf_id", turfID), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid turf id format"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		mode, err := booking.ParseMode(req.Type)
		if err != nil {
			log.Error("invalid booking type", slog.String("type", req.Type))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("type must be UPCOMING or PREVIOUS"))
			return
		}

		q := booking.ListQuery{
			TurfID:     turfID,
			Mode:       mode,
			BookerName: req.BookerName,
			Offset:     req.Offset,
			Limit:      req.Limit,
		}

		if req.SlotDate != "" {
			if q.SlotDate, err = models.ParseDate(req.SlotDate); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid slot date"))
				return
			}
		}

		if req.BookingDate != "" {
			if q.BookingDate, err = models.ParseDate(req.BookingDate); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid booking date"))
				return
			}
		}

		bookings, err := lister.ListBookings(r.Context(), q)
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		log.Info("bookings listed", slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
