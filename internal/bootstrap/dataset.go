// Package bootstrap wires configuration to a dataset source and performs the
// one-time load both binaries start with.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"customer-insights-service/internal/config"
	csvsource "customer-insights-service/internal/insights/adapters/csv"
	pgsource "customer-insights-service/internal/insights/adapters/postgres"
	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/ports"
)

type LoadObserver interface {
	ObserveDatasetLoad(source string, records int, elapsed time.Duration)
}

// OpenSource returns the configured source and a release func for any
// connection it holds.
func OpenSource(ctx context.Context, cfg config.DatasetConfig) (ports.DatasetSource, func() error, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return csvsource.NewFileLoader(cfg.Path, cfg.Strict()), func() error { return nil }, nil
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		db.SetMaxOpenConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		return pgsource.NewDatasetSource(pgsource.NewSQLDB(db), cfg.Table, cfg.Strict()), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
}

// LoadDataset opens the configured source, loads it once and releases it.
// obs may be nil.
func LoadDataset(ctx context.Context, cfg config.DatasetConfig, log *slog.Logger, obs LoadObserver) (*domain.Dataset, error) {
	src, closeFn, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return Load(ctx, src, log, obs)
}

func Load(ctx context.Context, src ports.DatasetSource, log *slog.Logger, obs LoadObserver) (*domain.Dataset, error) {
	start := time.Now()
	ds, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	log.InfoContext(ctx, "dataset loaded",
		slog.String("source", ds.Source()),
		slog.Int("records", ds.Len()),
		slog.Duration("duration", elapsed),
	)
	if obs != nil {
		obs.ObserveDatasetLoad(ds.Source(), ds.Len(), elapsed)
	}
	return ds, nil
}
