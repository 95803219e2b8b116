package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"turfBooker/internal/booking"
	"turfBooker/internal/config"
	"turfBooker/internal/http-server/handlers/booking/checkAvailability"
	"turfBooker/internal/http-server/handlers/booking/createBooking"
	"turfBooker/internal/http-server/handlers/booking/deleteBooking"
	"turfBooker/internal/http-server/handlers/booking/getBooking"
	"turfBooker/internal/http-server/handlers/booking/getStatistics"
	"turfBooker/internal/http-server/handlers/booking/listBookings"
	"turfBooker/internal/http-server/handlers/booking/updateBooking"
	"turfBooker/internal/http-server/handlers/turf/createTurf"
	"turfBooker/internal/http-server/handlers/turf/getTurf"
	"turfBooker/internal/http-server/handlers/turf/updateTurf"
	"turfBooker/internal/http-server/middleware/mwlogger"
	"turfBooker/internal/lib/logger/handlers/slogpretty"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
	"turfBooker/internal/storage/postgres"
	"turfBooker/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

// store is what both storage backends provide.
type store interface {
	booking.Repository
	SaveTurf(ctx context.Context, turf models.Turf) (models.Turf, error)
	UpdateTurf(ctx context.Context, turf models.Turf) (*models.Turf, error)
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting turf booker",
		slog.String("env", cfg.Env),
		slog.String("timezone", cfg.Timezone),
		slog.String("storage", cfg.Storage.Driver),
	)
	log.Debug("debug messages are enabled")

	storage, err := openStorage(cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	bookings := booking.New(storage, time.Now, cfg.Location())

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/turfs", createTurf.New(log, storage))

	router.Route("/turfs/{turfID}", func(r chi.Router) {
		r.Get("/", getTurf.New(log, storage))
		r.Put("/", updateTurf.New(log, storage))
		r.Post("/availability", checkAvailability.New(log, bookings))
		r.Get("/statistics", getStatistics.New(log, bookings))

		r.Post("/bookings", createBooking.New(log, bookings))
		r.Post("/bookings/query", listBookings.New(log, bookings))
		r.Get("/bookings/{bookingID}", getBooking.New(log, bookings))
		r.Put("/bookings/{bookingID}", updateBooking.New(log, bookings))
		r.Delete("/bookings/{bookingID}", deleteBooking.New(log, bookings))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg config.Storage) (store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
