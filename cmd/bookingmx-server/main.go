// Command bookingmx-server runs the BookingMx reservation and city API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bookingmx/bookingmx/internal/api"
	"github.com/bookingmx/bookingmx/internal/cities"
	"github.com/bookingmx/bookingmx/internal/config"
	"github.com/bookingmx/bookingmx/internal/db"
	"github.com/bookingmx/bookingmx/internal/dbpool"
	"github.com/bookingmx/bookingmx/internal/service"
	"github.com/bookingmx/bookingmx/internal/store"
	"github.com/bookingmx/bookingmx/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}

	log.Info("server stopped")
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log, nil
}

// reservationStore is the storage surface the server needs beyond the service
// interface: the backend name for health reporting.
type reservationStore interface {
	service.ReservationStore
	Backend() string
}

// openStore selects the reservation backend. The returned pool is nil for the
// in-memory backend.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (reservationStore, *dbpool.Pool, error) {
	if cfg.StoreBackend != config.BackendPostgres {
		return store.NewMemoryReservationStore(), nil, nil
	}

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), int32(cfg.DBMaxConns)) //nolint:gosec // bounded by config validation.
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Migrate(ctx, pool, log); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	return store.NewReservationStore(store.Base{Pool: pool, Log: log}), pool, nil
}

// loadGraph builds the city graph from CITY_DATASET, or the embedded dataset
// when none is configured.
func loadGraph(cfg *config.Config) (*cities.Graph, error) {
	var (
		ds  *cities.Dataset
		err error
	)

	if cfg.CityDataset != "" {
		ds, err = cities.LoadDataset(cfg.CityDataset)
	} else {
		ds, err = cities.DefaultDataset()
	}

	if err != nil {
		return nil, err
	}

	return ds.Build()
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	resStore, pool, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	if pool != nil {
		defer pool.Close()
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("loading city dataset: %w", err)
	}

	hub := ws.NewHub(log)
	worker := service.NewEventWorker(hub, log, cfg.EventQueueSize)

	reservations := service.NewReservationService(resStore, worker, cfg.Location, log)
	citySvc := service.NewCityService(graph, cfg.NearbyMaxKm, log)

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:          log,
		Health:       api.NewHealthHandler(pool, hub, log, config.Version, resStore.Backend(), len(graph.Cities())),
		Hub:          hub,
		Reservations: reservations,
		Cities:       citySvc,
		CORSOrigins:  cfg.CORSOrigins,
		RateLimit:    cfg.RateLimit,
		RateBurst:    cfg.RateBurst,
	})

	apiSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":     cfg.Addr(),
		"metrics":  cfg.MetricsAddr(),
		"store":    resStore.Backend(),
		"cities":   len(graph.Cities()),
		"timezone": cfg.Timezone,
		"version":  config.Version,
	}).Info("starting bookingmx server")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})

	g.Go(func() error { return serve(apiSrv) })
	g.Go(func() error { return serve(metricsSrv) })

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(apiSrv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})

	return g.Wait()
}

// serve runs srv until it is shut down. http.ErrServerClosed is a clean exit.
func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	}

	return nil
}
