package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
	"turfBooker/internal/slots"
	"turfBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Request struct {
	BookerName string  `json:"booker_name" validate:"required"`
	SlotDate   string  `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string  `json:"end_time" validate:"required,datetime=15:04"`
	SlotTime   int     `json:"slot_time" validate:"required,gt=0"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error)
}

// New replaces the slot and details of an existing booking. The booking
// being edited never conflicts with itself.
func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		log = log.With(slog.String("turf_id", turfID), slog.String("booking_id", bookingID))

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

		slotDate, err := models.ParseDate(req.SlotDate)
		if err != nil {
			log.Error("invalid slot date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid slot date"))
			return
		}

		updated, err := updater.UpdateBooking(r.Context(), models.Booking{
			ID:         bookingID,
			TurfID:     turfID,
			BookerName: req.BookerName,
			SlotDate:   slotDate,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			SlotTime:   req.SlotTime,
			Amount:     req.Amount,
		})
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTurfNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("turf not found"))
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrSlotTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot is already booked"))
			case errors.Is(err, slots.ErrInvalidTimeFormat):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("times must be in HH:MM format"))
			case errors.Is(err, slots.ErrInvalidRange):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end time does not match start time and slot time"))
			case errors.Is(err, booking.ErrOutsideHours):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking is outside operating hours"))
			case errors.Is(err, booking.ErrClosedDay):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("turf is closed on this day"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  updated,
		})
	}
}
