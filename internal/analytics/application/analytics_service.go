package application

import (
	"context"
	"time"

	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// DefaultCacheTTL durée de vie par défaut des résultats mémoïsés
const DefaultCacheTTL = 5 * time.Minute

// AnalyticsService calcule les indicateurs sur un jeu de données immuable
// et mémoïse les résultats par paramètres de période
type AnalyticsService struct {
	dataset  *datasetdomain.Dataset
	cache    sharedinfra.Cache
	cacheTTL time.Duration
	logger   *sharedinfra.Logger
}

// NewAnalyticsService crée une nouvelle instance de AnalyticsService
func NewAnalyticsService(
	dataset *datasetdomain.Dataset,
	cache sharedinfra.Cache,
	cacheTTL time.Duration,
	logger *sharedinfra.Logger,
) *AnalyticsService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	if logger == nil {
		logger = sharedinfra.NopLogger()
	}
	return &AnalyticsService{
		dataset:  dataset,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Dataset retourne les tables de base
func (s *AnalyticsService) Dataset() *datasetdomain.Dataset {
	return s.dataset
}

// SalesFact retourne la table de faits pour la période (mémoïsée)
func (s *AnalyticsService) SalesFact(ctx context.Context, window shareddomain.MonthWindow) (domain.SalesFactTable, error) {
	key := windowKey("sales", window)
	if cached, found := s.cache.Get(key); found {
		s.logger.Debug(ctx, "cache hit", map[string]any{"key": key})
		return cached.(domain.SalesFactTable), nil
	}

	start := time.Now()
	sales, err := PrepareAnalysisDataset(s.dataset, window)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "sales fact built", map[string]any{
		"key":         key,
		"rows":        sales.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	s.cache.Set(key, sales, s.cacheTTL)
	return sales, nil
}

// KeyMetrics retourne la synthèse des indicateurs pour la période (mémoïsée)
func (s *AnalyticsService) KeyMetrics(ctx context.Context, window shareddomain.MonthWindow) (domain.KeyMetrics, error) {
	key := windowKey("metrics", window)
	if cached, found := s.cache.Get(key); found {
		return cached.(domain.KeyMetrics), nil
	}

	sales, err := s.SalesFact(ctx, window)
	if err != nil {
		return domain.KeyMetrics{}, err
	}

	metrics := CalculateKeyMetrics(sales, s.dataset)
	s.cache.Set(key, metrics, s.cacheTTL)
	return metrics, nil
}

// Dashboard retourne les données du tableau de bord pour la période (mémoïsées)
func (s *AnalyticsService) Dashboard(ctx context.Context, window shareddomain.MonthWindow) (domain.Dashboard, error) {
	key := windowKey("dashboard", window)
	if cached, found := s.cache.Get(key); found {
		return cached.(domain.Dashboard), nil
	}

	sales, err := s.SalesFact(ctx, window)
	if err != nil {
		return domain.Dashboard{}, err
	}

	dashboard := BuildDashboard(sales, s.dataset, window)
	s.cache.Set(key, dashboard, s.cacheTTL)
	return dashboard, nil
}

// OrderStatusDistribution distribution des statuts sur toutes les commandes, filtrée par année si fournie
func (s *AnalyticsService) OrderStatusDistribution(ctx context.Context, year *int) ([]domain.StatusShare, error) {
	kb := sharedinfra.NewCacheKeyBuilder().Add("status")
	if year != nil {
		kb.AddInt(*year)
	} else {
		kb.Add("all")
	}
	key := kb.Build()

	if cached, found := s.cache.Get(key); found {
		return cached.([]domain.StatusShare), nil
	}

	shares, err := OrderStatusDistribution(s.dataset.Orders, year)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, shares, s.cacheTTL)
	return shares, nil
}

// InvalidateCache supprime les résultats mémoïsés d'une période
func (s *AnalyticsService) InvalidateCache(ctx context.Context, window shareddomain.MonthWindow) {
	for _, prefix := range []string{"sales", "metrics", "dashboard"} {
		s.cache.Delete(windowKey(prefix, window))
	}
	s.logger.Info(ctx, "cache invalidated", map[string]any{"window": windowKey("", window)})
}

// ClearCache vide le cache
func (s *AnalyticsService) ClearCache(ctx context.Context) {
	s.cache.Clear()
	s.logger.Info(ctx, "cache cleared", nil)
}

// windowKey clé de cache d'une période; les mois par défaut sont normalisés
// pour que deux écritures de la même période partagent l'entrée
func windowKey(prefix string, w shareddomain.MonthWindow) string {
	startMonth, endMonth := 0, 0
	if w.HasStart() {
		startMonth = w.EffectiveStartMonth()
	}
	if w.HasEnd() {
		endMonth = w.EffectiveEndMonth()
	}
	return sharedinfra.NewCacheKeyBuilder().
		Add(prefix).
		AddInt(w.StartYear).
		AddInt(startMonth).
		AddInt(w.EndYear).
		AddInt(endMonth).
		Build()
}
