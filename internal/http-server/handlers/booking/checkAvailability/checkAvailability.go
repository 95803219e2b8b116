package checkAvailability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

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
	SlotDate string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	Hours    int    `json:"hours" validate:"required,gt=0,lte=24"`
}

type Response struct {
	response.Response
	Slots []slots.TimeSlot `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	Availability(ctx context.Context, turfID string, date models.Date, hours int) ([]slots.TimeSlot, error)
}

func New(log *slog.Logger, checker AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkAvailability.New"

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

		date, err := models.ParseDate(req.SlotDate)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid slot date"))
			return
		}

		free, err := checker.Availability(r.Context(), turfID, date, req.Hours)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTurfNotFound):
				log.Warn("turf not found", slog.String("turf_id", turfID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("turf not found"))
			case errors.Is(err, slots.ErrInvalidDuration):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("hours must be positive"))
			default:
				log.Error("failed to check availability", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to check availability"))
			}
			return
		}

		log.Debug("availability computed", slog.String("date", date.String()), slog.Int("free", len(free)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Slots:    free,
		})
	}
}
