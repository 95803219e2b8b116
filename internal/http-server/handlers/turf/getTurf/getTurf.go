package getTurf

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
	Turf *models.Turf `json:"turf,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TurfGetter
type TurfGetter interface {
	Turf(ctx context.Context, id string) (*models.Turf, error)
}

func New(log *slog.Logger, getter TurfGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.turf.getTurf.New"

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

		turf, err := getter.Turf(r.Context(), turfID)
		if err != nil {
			if errors.Is(err, storage.ErrTurfNotFound) {
				log.Warn("turf not found", slog.String("turf_id", turfID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("turf not found"))
				return
			}

			log.Error("failed to get turf", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get turf"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Turf:     turf,
		})
	}
}
