package getStatistics

import (
	"context"
	"log/slog"
	"net/http"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Response struct {
	response.Response
	Statistics *booking.Statistics `json:"statistics,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatisticsGetter
type StatisticsGetter interface {
	Statistics(ctx context.Context, turfID string) (booking.Statistics, error)
}

func New(log *slog.Logger, getter StatisticsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getStatistics.New"

		log := log.With(slog.String("op", op))

		turfID := chi.URLParam(r, "turfID")
		if err := uuid.Validate(turfID); err != nil {
			log.Error("invalid turf id format", slog.String("turf_id", turfID), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid turf id format"))
			return
		}

		stats, err := getter.Statistics(r.Context(), turfID)
		if err != nil {
			log.Error("failed to get statistics", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get statistics"))
			return
		}

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Statistics: &stats,
		})
	}
}
