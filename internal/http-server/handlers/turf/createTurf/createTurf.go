package createTurf

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultOpenAt  = "08:00"
	DefaultCloseAt = "00:00"
	DefaultAddress = "Default Address"
)

var allWeek = []int{1, 2, 3, 4, 5, 6, 7}

type Request struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	OpenAt   string `json:"open_at" validate:"omitempty,datetime=15:04"`
	CloseAt  string `json:"close_at" validate:"omitempty,datetime=15:04"`
	DaysOpen []int  `json:"days_open" validate:"omitempty,max=7,dive,min=1,max=7"`
	OwnerID  string `json:"owner_id" validate:"required"`
}

type Response struct {
	response.Response
	Turf *models.Turf `json:"turf,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TurfCreator
type TurfCreator interface {
	SaveTurf(ctx context.Context, turf models.Turf) (models.Turf, error)
}

// New registers a turf for an owner. Missing hours, days and address fall
// back to the defaults a freshly signed-up owner gets.
func New(log *slog.Logger, creator TurfCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.turf.createTurf.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		turf := models.Turf{
			Name:     req.Name,
			Address:  req.Address,
			OpenAt:   req.OpenAt,
			CloseAt:  req.CloseAt,
			DaysOpen: req.DaysOpen,
			OwnerID:  req.OwnerID,
		}
		applyDefaults(&turf)

		if _, _, err := slots.Window(turf.OpenAt, turf.CloseAt); err != nil {
			log.Error("invalid operating hours", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("opening and closing times must differ"))
			return
		}

		saved, err := creator.SaveTurf(r.Context(), turf)
		if err != nil {
			if errors.Is(err, storage.ErrTurfExists) {
				log.Warn("owner already has a turf", slog.String("owner_id", req.OwnerID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("owner already has a turf"))
				return
			}

			log.Error("failed to create turf", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create turf"))
			return
		}

		log.Info("turf created", slog.String("turf_id", saved.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Turf:     &saved,
		})
	}
}

func applyDefaults(t *models.Turf) {
	if t.Address == "" {
		t.Address = DefaultAddress
	}
	if t.OpenAt == "" {
		t.OpenAt = DefaultOpenAt
	}
	if t.CloseAt == "" {
		t.CloseAt = DefaultCloseAt
	}
	if len(t.DaysOpen) == 0 {
		t.DaysOpen = append([]int(nil), allWeek...)
	}
}
