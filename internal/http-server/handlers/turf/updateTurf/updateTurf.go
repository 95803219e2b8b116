package updateTurf

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

// Request replaces the editable profile of a turf. Ownership never changes.
type Request struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	OpenAt   string `json:"open_at" validate:"required,datetime=15:04"`
	CloseAt  string `json:"close_at" validate:"required,datetime=15:04"`
	DaysOpen []int  `json:"days_open" validate:"max=7,dive,min=1,max=7"`
}

type Response struct {
	response.Response
	Turf *models.Turf `json:"turf,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TurfUpdater
type TurfUpdater interface {
	UpdateTurf(ctx context.Context, turf models.Turf) (*models.Turf, error)
}

func New(log *slog.Logger, updater TurfUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.turf.updateTurf.New"

		log := log.With(slog.String("op", op))

		turfID := chi.URLParam(r, "turfID")
		if err := uuid.Validate(turfID); err != nil {
			log.Error("invalid turf id format", slog.String("turf_id", turfID), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid turf id format"))
			return
		}

		log = log.With(slog.String("turf_id", turfID))

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

		if _, _, err := slots.Window(req.OpenAt, req.CloseAt); err != nil {
			log.Error("invalid operating hours", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("opening and closing times must differ"))
			return
		}

		updated, err := updater.UpdateTurf(r.Context(), models.Turf{
			ID:       turfID,
			Name:     req.Name,
			Address:  req.Address,
			OpenAt:   req.OpenAt,
			CloseAt:  req.CloseAt,
			DaysOpen: req.DaysOpen,
		})
		if err != nil {
			if errors.Is(err, storage.ErrTurfNotFound) {
				log.Warn("turf not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("turf not found"))
				return
			}

			log.Error("failed to update turf", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update turf"))
			return
		}

		log.Info("turf updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Turf:     updated,
		})
	}
}
