package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	analyticsapp "ecomdash/internal/analytics/application"
	analyticsdomain "ecomdash/internal/analytics/domain"
	exportapp "ecomdash/internal/export/application"
	exportdomain "ecomdash/internal/export/domain"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

const defaultTopCategories = 5

// Handlers contient tous les handlers de l'API V1
type Handlers struct {
	analytics *analyticsapp.AnalyticsService
	export    *exportapp.ExportService
	logger    *sharedinfra.Logger
}

// NewHandlers crée une nouvelle instance des handlers V1
func NewHandlers(
	analytics *analyticsapp.AnalyticsService,
	export *exportapp.ExportService,
	logger *sharedinfra.Logger,
) *Handlers {
	if logger == nil {
		logger = sharedinfra.NopLogger()
	}
	return &Handlers{analytics: analytics, export: export, logger: logger}
}

// NewRouter monte les routes de l'API
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(
		Recoverer(h.logger),
		RequestID(h.logger),
		Logging(h.logger),
	)

	r.Get("/api/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/metrics/summary", h.GetSummary)
		r.Get("/revenue", h.GetRevenue)
		r.Get("/revenue/growth", h.GetRevenueGrowth)
		r.Get("/orders", h.GetOrders)
		r.Get("/orders/status", h.GetOrderStatus)
		r.Get("/aov", h.GetAverageOrderValue)
		r.Get("/categories", h.GetCategories)
		r.Get("/states", h.GetStates)
		r.Get("/delivery/speed-ratings", h.GetDeliverySpeedRatings)
		r.Get("/delivery/bucket-ratings", h.GetDeliveryBucketRatings)
		r.Get("/reviews/distribution", h.GetReviewDistribution)
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/export/{file}", h.Export)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// badRequest erreur de paramètre client
type badRequest struct {
	err error
}

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		br badRequest
		ve validator.ValidationErrors
	)
	status := http.StatusInternalServerError
	if errors.As(err, &br) || errors.As(err, &ve) || errors.Is(err, shareddomain.ErrColumnNotFound) {
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func queryInt(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, badRequest{fmt.Errorf("%s must be an integer, got %q", name, raw)}
	}
	return v, true, nil
}

// parseWindow lit start_year, start_month, end_year, end_month (tous optionnels)
func parseWindow(r *http.Request) (shareddomain.MonthWindow, error) {
	var values [4]int
	for i, name := range []string{"start_year", "start_month", "end_year", "end_month"} {
		v, _, err := queryInt(r, name)
		if err != nil {
			return shareddomain.MonthWindow{}, err
		}
		values[i] = v
	}
	w, err := shareddomain.NewMonthWindow(values[0], values[1], values[2], values[3])
	if err != nil {
		return shareddomain.MonthWindow{}, badRequest{err}
	}
	return w, nil
}

func periodParam(r *http.Request) string {
	if p := r.URL.Query().Get("period"); p != "" {
		return p
	}
	return string(analyticsdomain.PeriodYear)
}

func (h *Handlers) sales(r *http.Request) (analyticsdomain.SalesFactTable, error) {
	window, err := parseWindow(r)
	if err != nil {
		return nil, err
	}
	return h.analytics.SalesFact(r.Context(), window)
}

// Health handler pour GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int)
	for table, n := range h.analytics.Dataset().RowCounts() {
		counts[string(table)] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tables": counts})
}

// GetSummary handler pour GET /api/v1/metrics/summary
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metrics, err := h.analytics.KeyMetrics(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// GetRevenue handler pour GET /api/v1/revenue?period=year|month
func (h *Handlers) GetRevenue(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	byPeriod, err := analyticsapp.RevenueByPeriod(sales, periodParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_revenue": analyticsapp.TotalRevenue(sales),
		"by_period":     byPeriod,
	})
}

// GetRevenueGrowth handler pour GET /api/v1/revenue/growth
func (h *Handlers) GetRevenueGrowth(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyticsapp.MonthlyGrowthTrend(sales))
}

// GetOrders handler pour GET /api/v1/orders?period=year|month
func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	byPeriod, err := analyticsapp.OrdersByPeriod(sales, periodParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_orders": analyticsapp.TotalOrders(sales),
		"by_period":    byPeriod,
	})
}

// GetOrderStatus handler pour GET /api/v1/orders/status?year=
func (h *Handlers) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	year, ok, err := queryInt(r, "year")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var filter *int
	if ok {
		filter = &year
	}
	shares, err := h.analytics.OrderStatusDistribution(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

// GetAverageOrderValue handler pour GET /api/v1/aov?period=year|month
func (h *Handlers) GetAverageOrderValue(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	byPeriod, err := analyticsapp.AverageOrderValueByPeriod(sales, periodParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"average_order_value": analyticsapp.AverageOrderValue(sales),
		"by_period":           byPeriod,
	})
}

// GetCategories handler pour GET /api/v1/categories?top=N
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	top, ok, err := queryInt(r, "top")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		top = defaultTopCategories
	}
	if top <= 0 {
		h.writeError(w, r, badRequest{fmt.Errorf("top must be positive, got %d", top)})
		return
	}

	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyticsapp.TopCategories(sales, h.analytics.Dataset().Products, top))
}

// GetStates handler pour GET /api/v1/states
func (h *Handlers) GetStates(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyticsapp.RevenueByState(sales, h.analytics.Dataset().Customers))
}

// GetDeliverySpeedRatings handler pour GET /api/v1/delivery/speed-ratings
func (h *Handlers) GetDeliverySpeedRatings(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"average_delivery_speed_days": analyticsapp.AverageDeliverySpeed(sales),
		"ratings":                     analyticsapp.DeliverySpeedRatingCorrelation(sales, h.analytics.Dataset().Reviews),
	})
}

// GetDeliveryBucketRatings handler pour GET /api/v1/delivery/bucket-ratings
func (h *Handlers) GetDeliveryBucketRatings(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyticsapp.DeliveryTimeRatingCorrelation(sales, h.analytics.Dataset().Reviews))
}

// GetReviewDistribution handler pour GET /api/v1/reviews/distribution
func (h *Handlers) GetReviewDistribution(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	reviews := h.analytics.Dataset().Reviews
	writeJSON(w, http.StatusOK, map[string]any{
		"average_review_score": analyticsapp.AverageReviewScore(sales, reviews),
		"distribution":         analyticsapp.ReviewScoreDistribution(sales, reviews),
	})
}

// GetDashboard handler pour GET /api/v1/dashboard
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dashboard, err := h.analytics.Dashboard(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

var exportFiles = map[string]struct {
	format      exportdomain.ExportFormat
	exportType  exportdomain.ExportType
	contentType string
}{
	"sales.csv":     {exportdomain.ExportFormatCSV, exportdomain.ExportTypeSales, "text/csv"},
	"metrics.csv":   {exportdomain.ExportFormatCSV, exportdomain.ExportTypeMetrics, "text/csv"},
	"sales.parquet": {exportdomain.ExportFormatParquet, exportdomain.ExportTypeSales, "application/octet-stream"},
}

// Export handler pour GET /api/v1/export/{sales.csv|metrics.csv|sales.parquet}
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	target, ok := exportFiles[file]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown export %q", file)})
		return
	}

	window, err := parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	job, err := exportdomain.NewExportJob(target.format, target.exportType, window)
	if err != nil {
		h.writeError(w, r, badRequest{err})
		return
	}

	data, err := h.export.Run(r.Context(), job)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", target.contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+job.FileName())
	_, _ = w.Write(data)
}
