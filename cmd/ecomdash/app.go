package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	analyticsapp "ecomdash/internal/analytics/application"
	"ecomdash/internal/config"
	datasetapp "ecomdash/internal/dataset/application"
	datasetdomain "ecomdash/internal/dataset/domain"
	datasetinfra "ecomdash/internal/dataset/infrastructure"
	exportapp "ecomdash/internal/export/application"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// app regroupe les services construits à partir de la configuration
type app struct {
	cfg       *config.Config
	logger    *sharedinfra.Logger
	db        *sql.DB
	cache     sharedinfra.Cache
	analytics *analyticsapp.AnalyticsService
	export    *exportapp.ExportService
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}
	return config.Load(envFile)
}

// openSource construit la source configurée; db est nil pour la source CSV
func openSource(ctx context.Context, cfg *config.Config) (datasetdomain.Source, *sql.DB, error) {
	if cfg.Data.Source != config.SourcePostgres {
		return datasetinfra.NewCSVSource(cfg.Data.Dir), nil, nil
	}
	db, err := sharedinfra.OpenDatabase(ctx, cfg.DB.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return datasetinfra.NewPostgresSource(db, cfg.DB.Name), db, nil
}

// newApp charge le jeu de données et câble les services
func newApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := cfg.NewLogger("ecomdash")

	source, db, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ds, err := datasetapp.NewLoaderService(source, logger).Load(ctx)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	cache := cfg.Cache.NewCache()
	analytics := analyticsapp.NewAnalyticsService(ds, cache, cfg.Cache.TTL, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		cache:     cache,
		analytics: analytics,
		export:    exportapp.NewExportService(analytics, logger, cfg.Export.BatchSize),
	}, nil
}

func (a *app) Close() {
	a.cache.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

// windowFromFlags lit la période des flags persistants
func windowFromFlags(cmd *cobra.Command) (shareddomain.MonthWindow, error) {
	var values [4]int
	for i, name := range []string{"start-year", "start-month", "end-year", "end-month"} {
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return shareddomain.MonthWindow{}, err
		}
		values[i] = v
	}
	return shareddomain.NewMonthWindow(values[0], values[1], values[2], values[3])
}
