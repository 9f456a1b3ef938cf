package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grupo1/reclamos-backend/internal/config"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Postgres  *pgxpool.Pool
	Firestore *firestore.Client
}

// Run builds the logger and opens the client for the configured data source.
// The mock data source opens nothing.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.HandlerFor(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return bs, err
	}

	switch cfg.DataSource {
	case config.DataSourcePostgres:
		bs.Postgres, err = InitPostgres(ctx, cfg.DatabaseURL, cfg.DBTimeout)
	case config.DataSourceFirestore:
		bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
	}
	if err != nil {
		return bs, err
	}

	bs.Log.Info("bootstrap complete", "data_source", cfg.DataSource)
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Postgres != nil {
		bs.Postgres.Close()
	}
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore client", "error", err)
		}
	}
}
