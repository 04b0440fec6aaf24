package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	analyticsapp "ecomdash/internal/analytics/application"
	analyticsdomain "ecomdash/internal/analytics/domain"
	"ecomdash/internal/export/domain"
	"ecomdash/internal/export/infrastructure"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// DefaultBatchSize nombre de lignes écrites entre deux flush du writer CSV
const DefaultBatchSize = 1000

// ExportService exporte la table de faits et les indicateurs
type ExportService struct {
	analytics *analyticsapp.AnalyticsService
	logger    *sharedinfra.Logger
	batchSize int
}

// NewExportService crée une nouvelle instance de ExportService
func NewExportService(analytics *analyticsapp.AnalyticsService, logger *sharedinfra.Logger, batchSize int) *ExportService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = sharedinfra.NopLogger()
	}
	return &ExportService{analytics: analytics, logger: logger, batchSize: batchSize}
}

// Run exécute un job d'export et retourne le contenu du fichier
func (s *ExportService) Run(ctx context.Context, job *domain.ExportJob) ([]byte, error) {
	ctx = s.logger.WithField(ctx, "export", job.FileName())

	var (
		data []byte
		err  error
	)
	switch {
	case job.Format() == domain.ExportFormatParquet:
		data, err = s.ExportSalesToParquet(ctx, job.Window())
	case job.ExportType() == domain.ExportTypeMetrics:
		data, err = s.ExportMetricsToCSV(ctx, job.Window())
	default:
		data, err = s.ExportSalesToCSV(ctx, job.Window())
	}
	if err != nil {
		s.logger.Error(ctx, "export failed", err)
		return nil, err
	}

	s.logger.Info(ctx, "export done", map[string]any{"bytes": len(data)})
	return data, nil
}

// ExportSalesToCSV génère en mémoire le CSV de la table de faits
func (s *ExportService) ExportSalesToCSV(ctx context.Context, window shareddomain.MonthWindow) ([]byte, error) {
	rows, err := s.saleRows(ctx, window)
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 256*len(rows)+256))
	writer := csv.NewWriter(buffer)

	if err := writer.Write(domain.CSVHeaders()); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := writer.Write(row.ToCSVRow()); err != nil {
			return nil, err
		}
		// flush par lots pour limiter la taille du buffer interne
		if (i+1)%s.batchSize == 0 {
			writer.Flush()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// ExportMetricsToCSV exporte les indicateurs en CSV par sections
func (s *ExportService) ExportMetricsToCSV(ctx context.Context, window shareddomain.MonthWindow) ([]byte, error) {
	sales, err := s.analytics.SalesFact(ctx, window)
	if err != nil {
		return nil, err
	}
	metrics, err := s.analytics.KeyMetrics(ctx, window)
	if err != nil {
		return nil, err
	}
	byYear, err := analyticsapp.RevenueByPeriod(sales, string(analyticsdomain.PeriodYear))
	if err != nil {
		return nil, err
	}
	ds := s.analytics.Dataset()

	buffer := bytes.NewBuffer(make([]byte, 0, 16*1024))
	writer := csv.NewWriter(buffer)

	records := [][]string{
		{"Type", "Metric", "Value"},
		{"Global", "Total Revenue", money(metrics.TotalRevenue)},
		{"Global", "Total Orders", strconv.Itoa(metrics.TotalOrders)},
		{"Global", "Average Order Value", money(metrics.AverageOrderValue)},
		{"Global", "Average Review Score", fmt.Sprintf("%.2f", metrics.AverageReviewScore)},
		{"Global", "Average Delivery Speed (days)", fmt.Sprintf("%.2f", metrics.AverageDeliverySpeedDays)},
		{"Global", "Unique Customers", strconv.Itoa(metrics.UniqueCustomers)},
		{},
		{"Revenue By Year", "Year", "Revenue"},
	}
	for _, p := range byYear {
		records = append(records, []string{"Revenue By Year", strconv.Itoa(p.Period), money(p.Revenue)})
	}

	records = append(records, []string{}, []string{"Category Revenue", "Category", "Revenue"})
	for _, c := range analyticsapp.RevenueByCategory(sales, ds.Products) {
		records = append(records, []string{"Category Revenue", c.Category, money(c.Revenue)})
	}

	records = append(records, []string{}, []string{"State Revenue", "State", "Revenue"})
	for _, st := range analyticsapp.RevenueByState(sales, ds.Customers) {
		records = append(records, []string{"State Revenue", st.State, money(st.Revenue)})
	}

	records = append(records, []string{}, []string{"Delivery Rating", "Delivery Time", "Average Review Score"})
	for _, b := range analyticsapp.DeliveryTimeRatingCorrelation(sales, ds.Reviews) {
		records = append(records, []string{"Delivery Rating", string(b.DeliveryTime), fmt.Sprintf("%.2f", b.AvgReviewScore)})
	}

	records = append(records, []string{}, []string{"Review Distribution", "Score", "Proportion"})
	for _, sc := range analyticsapp.ReviewScoreDistribution(sales, ds.Reviews) {
		records = append(records, []string{"Review Distribution", strconv.Itoa(sc.Score), fmt.Sprintf("%.4f", sc.Proportion)})
	}

	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ExportSalesToParquet exporte la table de faits au format Parquet
func (s *ExportService) ExportSalesToParquet(ctx context.Context, window shareddomain.MonthWindow) ([]byte, error) {
	rows, err := s.saleRows(ctx, window)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if err := infrastructure.WriteSalesParquet(&buffer, rows, 4); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (s *ExportService) saleRows(ctx context.Context, window shareddomain.MonthWindow) ([]*domain.SaleExportRow, error) {
	sales, err := s.analytics.SalesFact(ctx, window)
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.SaleExportRow, 0, sales.Len())
	for i := range sales {
		rows = append(rows, domain.NewSaleExportRow(sales[i]))
	}
	return rows, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
