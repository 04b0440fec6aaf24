package application

import (
	"context"
	"fmt"
	"time"

	"ecomdash/internal/dataset/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// LoaderService charge le jeu de données depuis une source et journalise le résultat
type LoaderService struct {
	source domain.Source
	logger *sharedinfra.Logger
}

// NewLoaderService crée un nouveau service de chargement
func NewLoaderService(source domain.Source, logger *sharedinfra.Logger) *LoaderService {
	if logger == nil {
		logger = sharedinfra.NopLogger()
	}
	return &LoaderService{source: source, logger: logger}
}

// Load charge les cinq tables; aucun résultat partiel en cas d'erreur
func (s *LoaderService) Load(ctx context.Context) (*domain.Dataset, error) {
	ctx = s.logger.WithField(ctx, "source", s.source.Describe())
	start := time.Now()

	ds, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "dataset load failed", err)
		return nil, fmt.Errorf("load dataset from %s: %w", s.source.Describe(), err)
	}

	fields := map[string]any{"duration_ms": time.Since(start).Milliseconds()}
	for table, n := range ds.RowCounts() {
		fields[string(table)] = n
	}
	s.logger.Info(ctx, "dataset loaded", fields)

	return ds, nil
}
