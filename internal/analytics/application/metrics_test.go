package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
	"ecomdash/internal/testhelpers"
)

func sampleSales(t *testing.T) (domain.SalesFactTable, *datasetdomain.Dataset) {
	t.Helper()
	ds := testhelpers.SampleDataset(t)
	sales, err := PrepareAnalysisDataset(ds, shareddomain.Unbounded())
	require.NoError(t, err)
	return sales, ds
}

func TestRevenueMetrics(t *testing.T) {
	sales, _ := sampleSales(t)

	require.InDelta(t, 580.0, TotalRevenue(sales), 1e-9)

	byYear, err := RevenueByPeriod(sales, "year")
	require.NoError(t, err)
	require.Equal(t, []domain.PeriodRevenue{{Period: 2023, Revenue: 350}, {Period: 2024, Revenue: 230}}, byYear)

	byMonth, err := RevenueByPeriod(sales, "month")
	require.NoError(t, err)
	require.Equal(t, []domain.PeriodRevenue{{Period: 3, Revenue: 300}, {Period: 6, Revenue: 80}, {Period: 12, Revenue: 200}}, byMonth)
}

func TestPeriodColumnNotFound(t *testing.T) {
	sales, _ := sampleSales(t)

	_, err := RevenueByPeriod(sales, "quarter")
	require.ErrorIs(t, err, shareddomain.ErrColumnNotFound)
	_, err = OrdersByPeriod(sales, "week")
	require.ErrorIs(t, err, shareddomain.ErrColumnNotFound)
	_, err = AverageOrderValueByPeriod(sales, "")
	require.ErrorIs(t, err, shareddomain.ErrColumnNotFound)
}

func TestRevenueGrowth(t *testing.T) {
	require.Equal(t, 0.0, RevenueGrowth(100, 0))
	require.InDelta(t, 0.5, RevenueGrowth(150, 100), 1e-12)
	require.InDelta(t, -0.25, RevenueGrowth(75, 100), 1e-12)
}

func TestMonthlyGrowthTrend(t *testing.T) {
	sales, _ := sampleSales(t)

	trend := MonthlyGrowthTrend(sales)
	require.Len(t, trend, 3)
	require.Nil(t, trend[0].Change)
	require.InDelta(t, (80.0-300.0)/300.0, *trend[1].Change, 1e-12)
	require.InDelta(t, 1.5, *trend[2].Change, 1e-12)
}

func TestOrderMetrics(t *testing.T) {
	sales, _ := sampleSales(t)

	require.Equal(t, 4, TotalOrders(sales))
	require.LessOrEqual(t, TotalOrders(sales), sales.Len())

	byYear, err := OrdersByPeriod(sales, "year")
	require.NoError(t, err)
	require.Equal(t, []domain.PeriodOrders{{Period: 2023, Orders: 2}, {Period: 2024, Orders: 2}}, byYear)
}

func TestAverageOrderValue(t *testing.T) {
	sales, _ := sampleSales(t)

	require.InDelta(t, 145.0, AverageOrderValue(sales), 1e-9)

	byYear, err := AverageOrderValueByPeriod(sales, "year")
	require.NoError(t, err)
	require.Len(t, byYear, 2)
	require.Equal(t, 2023, byYear[0].Period)
	require.InDelta(t, 175.0, byYear[0].AverageOrderValue, 1e-9)
	require.InDelta(t, 115.0, byYear[1].AverageOrderValue, 1e-9)
}

func TestRevenueByCategory(t *testing.T) {
	sales, ds := sampleSales(t)

	categories := RevenueByCategory(sales, ds.Products)
	require.Equal(t, []domain.CategoryRevenue{
		{Category: "electronics", Revenue: 330},
		{Category: "toys", Revenue: 220},
	}, categories)

	var sum float64
	for _, c := range categories {
		sum += c.Revenue
	}
	require.LessOrEqual(t, sum, TotalRevenue(sales))

	require.Len(t, TopCategories(sales, ds.Products, 1), 1)
	require.Len(t, TopCategories(sales, ds.Products, 10), 2)
	require.Empty(t, TopCategories(sales, ds.Products, 0))
}

func TestRevenueByState(t *testing.T) {
	sales, ds := sampleSales(t)

	require.Equal(t, []domain.StateRevenue{
		{State: "SP", Revenue: 300},
		{State: "RJ", Revenue: 200},
	}, RevenueByState(sales, ds.Customers))
}

func TestDeliverySpeedRatingCorrelation(t *testing.T) {
	sales, ds := sampleSales(t)

	require.Equal(t, []domain.DeliverySpeedRating{
		{DeliverySpeed: 3, AvgReviewScore: 5},
		{DeliverySpeed: 5, AvgReviewScore: 4.5},
		{DeliverySpeed: 10, AvgReviewScore: 2},
	}, DeliverySpeedRatingCorrelation(sales, ds.Reviews))
}

func TestCategorizeDeliveryTime(t *testing.T) {
	tests := []struct {
		days int
		want domain.DeliveryBucket
	}{
		{-2, domain.DeliveryFast},
		{0, domain.DeliveryFast},
		{3, domain.DeliveryFast},
		{4, domain.DeliveryMedium},
		{7, domain.DeliveryMedium},
		{8, domain.DeliverySlow},
		{45, domain.DeliverySlow},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CategorizeDeliveryTime(tt.days), "days=%d", tt.days)
	}
}

func TestDeliveryTimeRatingCorrelation(t *testing.T) {
	sales, ds := sampleSales(t)

	require.Equal(t, []domain.BucketRating{
		{DeliveryTime: domain.DeliveryFast, AvgReviewScore: 5},
		{DeliveryTime: domain.DeliveryMedium, AvgReviewScore: 4.5},
		{DeliveryTime: domain.DeliverySlow, AvgReviewScore: 2},
	}, DeliveryTimeRatingCorrelation(sales, ds.Reviews))
}

func TestDeliveryTimeRatingCorrelation_OneRowPerOrder(t *testing.T) {
	// o1 a trois items: sans déduplication la note de o1 pèserait trois fois
	ds := testhelpers.NewDatasetBuilder(t).
		Order("o1", "c1", "delivered", "2023-01-01 00:00:00", "2023-01-02 00:00:00").
		Order("o2", "c1", "delivered", "2023-01-01 00:00:00", "2023-01-03 00:00:00").
		Item("o1", 1, "p1", 1).
		Item("o1", 2, "p1", 1).
		Item("o1", 3, "p1", 1).
		Item("o2", 1, "p1", 1).
		Review("o1", 5).
		Review("o2", 1).
		Build()

	sales, err := PrepareAnalysisDataset(ds, shareddomain.Unbounded())
	require.NoError(t, err)

	ratings := DeliveryTimeRatingCorrelation(sales, ds.Reviews)
	require.Len(t, ratings, 1)
	require.InDelta(t, 3.0, ratings[0].AvgReviewScore, 1e-12)
}

func TestReviewMetrics(t *testing.T) {
	sales, ds := sampleSales(t)

	require.InDelta(t, 4.0, AverageReviewScore(sales, ds.Reviews), 1e-12)
	require.InDelta(t, 5.2, AverageDeliverySpeed(sales), 1e-12)

	dist := ReviewScoreDistribution(sales, ds.Reviews)
	require.Equal(t, []domain.ScoreShare{
		{Score: 2, Proportion: 0.25},
		{Score: 4, Proportion: 0.25},
		{Score: 5, Proportion: 0.5},
	}, dist)

	var sum float64
	for _, s := range dist {
		sum += s.Proportion
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestOrderStatusDistribution(t *testing.T) {
	ds := testhelpers.SampleDataset(t)

	all, err := OrderStatusDistribution(ds.Orders, nil)
	require.NoError(t, err)
	require.Equal(t, []domain.StatusShare{
		{Status: "delivered", Proportion: 0.8},
		{Status: "canceled", Proportion: 0.2},
	}, all)

	year := 2024
	y2024, err := OrderStatusDistribution(ds.Orders, &year)
	require.NoError(t, err)
	require.Len(t, y2024, 2)
	require.Equal(t, "delivered", y2024[0].Status)
	require.InDelta(t, 2.0/3.0, y2024[0].Proportion, 1e-12)
}

func TestOrderStatusDistribution_InvalidTimestamp(t *testing.T) {
	ds := testhelpers.NewDatasetBuilder(t).
		Order("o1", "c1", "delivered", "soon", "").
		Build()

	_, err := OrderStatusDistribution(ds.Orders, nil)
	require.NoError(t, err, "timestamps are only parsed when filtering by year")

	year := 2023
	_, err = OrderStatusDistribution(ds.Orders, &year)
	require.ErrorIs(t, err, shareddomain.ErrInvalidTimestamp)
}

func TestCalculateKeyMetrics(t *testing.T) {
	sales, ds := sampleSales(t)

	require.Equal(t, domain.KeyMetrics{
		TotalRevenue:             580,
		TotalOrders:              4,
		AverageOrderValue:        145,
		AverageReviewScore:       4,
		AverageDeliverySpeedDays: 5.2,
		UniqueCustomers:          3,
	}, CalculateKeyMetrics(sales, ds))
}

func TestMetrics_EmptyWindow(t *testing.T) {
	ds := testhelpers.SampleDataset(t)
	sales, err := PrepareAnalysisDataset(ds, shareddomain.MonthWindow{StartYear: 2030})
	require.NoError(t, err)
	require.Empty(t, sales)

	require.Zero(t, TotalRevenue(sales))
	require.Zero(t, TotalOrders(sales))
	require.Zero(t, AverageOrderValue(sales))
	require.Zero(t, AverageReviewScore(sales, ds.Reviews))
	require.Zero(t, AverageDeliverySpeed(sales))
	require.Empty(t, MonthlyGrowthTrend(sales))
	require.Empty(t, RevenueByCategory(sales, ds.Products))
	require.Empty(t, RevenueByState(sales, ds.Customers))
	require.Empty(t, DeliverySpeedRatingCorrelation(sales, ds.Reviews))
	require.Empty(t, DeliveryTimeRatingCorrelation(sales, ds.Reviews))
	require.Empty(t, ReviewScoreDistribution(sales, ds.Reviews))

	byYear, err := RevenueByPeriod(sales, "year")
	require.NoError(t, err)
	require.Empty(t, byYear)

	require.Equal(t, domain.KeyMetrics{}, CalculateKeyMetrics(sales, ds))
}

func BenchmarkCalculateKeyMetrics(b *testing.B) {
	ds := testhelpers.SampleDataset(b)
	sales, err := PrepareAnalysisDataset(ds, shareddomain.Unbounded())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CalculateKeyMetrics(sales, ds)
	}
}
