package createBooking

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

type BookingRequest struct {
	BookerName string  `json:"booker_name" validate:"required"`
	SlotDate   string  `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string  `json:"end_time" validate:"required,datetime=15:04"`
	SlotTime   int     `json:"slot_time" validate:"required,gt=0"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		turfID := chi.URLParam(r, "turfID")
		if turfID == "" {
			log.Error("turf id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("turf id is required"))
			return
		}

		if err := uuid.Validate(turfID); err != nil {
			log.Error("invalid turf id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid turf id format"))
			return
		}

		log = log.With(slog.String("turf_id", turfID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
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

		created, err := creator.CreateBooking(r.Context(), models.Booking{
			TurfID:     turfID,
			BookerName: req.BookerName,
			SlotDate:   slotDate,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			SlotTime:   req.SlotTime,
			Amount:     req.Amount,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTurfNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("turf not found"))
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
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.String("booking_id", created.ID))

		responseCreated(w, r, created)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  &b,
	})
}
