package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grupo1/reclamos-backend/internal/bootstrap"
	"github.com/grupo1/reclamos-backend/internal/config"
	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/handlers"
	"github.com/grupo1/reclamos-backend/internal/models"
	"github.com/grupo1/reclamos-backend/internal/response"
	"github.com/grupo1/reclamos-backend/internal/router"
	"github.com/grupo1/reclamos-backend/internal/services"
	"github.com/grupo1/reclamos-backend/internal/store"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// dataStore is the full surface every complaint store implements.
type dataStore interface {
	StreamRecords(ctx context.Context, handle func(*models.ComplaintRecord) error) error
	List(ctx context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error
	Get(ctx context.Context, id string) (*models.Complaint, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) (time.Time, error)
	Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error)
}

type adminService interface {
	Ping(ctx context.Context) (dto.PingResult, error)
	Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error)
}

type app struct {
	cfg   *config.Config
	bs    *bootstrap.Bootstrap
	deps  *handlers.Deps
	admin adminService
}

func newApp(ctx context.Context) (*app, error) {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	if err != nil {
		bs.Log.Error("bootstrap failed", "error", err)
		bs.Close()
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		bs.Close()
		return nil, err
	}

	// stores
	ds := newDataStore(cfg, bs)

	// services
	dashserv := services.NewDashboardService(ds, loc)
	cserv := services.NewComplaintService(ds)
	adserv := services.NewAdminService(ds, string(cfg.DataSource))

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = response.New(bs.Log)
	deps.DashboardSvc = dashserv
	deps.ComplaintSvc = cserv
	deps.AdminSvc = adserv

	return &app{cfg: cfg, bs: bs, deps: deps, admin: adserv}, nil
}

func newDataStore(cfg *config.Config, bs *bootstrap.Bootstrap) dataStore {
	switch cfg.DataSource {
	case config.DataSourceFirestore:
		return store.NewComplaintFirestoreStore(bs.Firestore, cfg.FirestoreCollection)
	case config.DataSourceMock:
		return store.NewComplaintMockStore()
	default:
		return store.NewComplaintPGStore(bs.Postgres)
	}
}

// ctx carries the application logger for commands that run outside a request.
func (a *app) ctx(parent context.Context) context.Context {
	return logger.ToContext(parent, a.bs.Log)
}

func (a *app) close() {
	a.bs.Close()
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains it.
func (a *app) serve(ctx context.Context) error {
	log := a.bs.Log
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           router.NewRouter(a.deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "addr", a.cfg.Addr, "data_source", a.cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server start failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server shutdown complete")
	return nil
}
