package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecomdash/internal/analytics/domain"
	shareddomain "ecomdash/internal/shared/domain"
	"ecomdash/internal/testhelpers"
)

func TestComparisonPeriods(t *testing.T) {
	cur, prev := ComparisonPeriods(shareddomain.MonthWindow{StartYear: 2022, EndYear: 2024})
	require.Equal(t, 2024, cur)
	require.Equal(t, 2023, prev)

	cur, prev = ComparisonPeriods(shareddomain.MonthWindow{StartYear: 2023, EndYear: 2023})
	require.Equal(t, 2023, cur)
	require.Equal(t, 2023, prev)
}

func TestTrendIndicator(t *testing.T) {
	require.Equal(t, domain.Trend{Text: "0.00%", Direction: domain.TrendNeutral}, TrendIndicator(10, 0))
	require.Equal(t, domain.Trend{Text: "50.00%", Direction: domain.TrendPositive}, TrendIndicator(150, 100))
	require.Equal(t, domain.Trend{Text: "25.00%", Direction: domain.TrendNegative}, TrendIndicator(75, 100))
	require.Equal(t, domain.Trend{Text: "0.00%", Direction: domain.TrendPositive}, TrendIndicator(100, 100))
}

func TestDeliveryTrend(t *testing.T) {
	require.Equal(t, domain.Trend{Text: "1.50 days", Direction: domain.TrendPositive}, DeliveryTrend(10, 11.5, true))
	require.Equal(t, domain.Trend{Text: "2.00 days", Direction: domain.TrendNegative}, DeliveryTrend(12, 10, true))
	require.Equal(t, domain.Trend{Text: "0.00 days", Direction: domain.TrendNeutral}, DeliveryTrend(10, 10, true))
	require.Equal(t, domain.Trend{Text: "0.00 days", Direction: domain.TrendNeutral}, DeliveryTrend(10, 10, false))
}

func TestStarRating(t *testing.T) {
	card := StarRating(4.5)
	require.Equal(t, 4, card.FullStars)
	require.True(t, card.HalfStar)
	require.Equal(t, "★★★★✓", card.Display)

	card = StarRating(3.2)
	require.Equal(t, 3, card.FullStars)
	require.False(t, card.HalfStar)

	require.Equal(t, "", StarRating(0).Display)
}

func TestBuildDashboard(t *testing.T) {
	ds := testhelpers.SampleDataset(t)
	window := shareddomain.Unbounded()
	sales, err := PrepareAnalysisDataset(ds, window)
	require.NoError(t, err)

	d := BuildDashboard(sales, ds, window)
	require.Equal(t, 2024, d.CurrentYear)
	require.Equal(t, 2023, d.PreviousYear)

	require.Len(t, d.KPIs, 4)
	revenue := d.KPIs[0]
	require.Equal(t, "Total Revenue", revenue.Label)
	require.Equal(t, "$230", revenue.Value)
	require.Equal(t, domain.Trend{Text: "34.29%", Direction: domain.TrendNegative}, revenue.Trend)

	growth := d.KPIs[1]
	require.Equal(t, "Monthly Growth", growth.Label)
	require.Equal(t, "-34.29%", growth.Value)
	require.Equal(t, domain.Trend{Text: "—", Direction: domain.TrendNegative}, growth.Trend)

	orders := d.KPIs[3]
	require.Equal(t, "2", orders.Value)
	require.Equal(t, domain.TrendPositive, orders.Trend.Direction)

	require.Equal(t, 2024, d.RevenueCurrent.Year)
	require.Len(t, d.RevenueCurrent.Points, 2)
	require.NotNil(t, d.RevenuePrevious)
	require.Equal(t, 2023, d.RevenuePrevious.Year)

	require.Equal(t, "toys", d.TopCategories[0].Category)
	require.Equal(t, []domain.StateRevenue{{State: "SP", Revenue: 150}}, d.RevenueByState)

	require.InDelta(t, 5.0, d.Delivery.AverageDays, 1e-12)
	require.Equal(t, domain.Trend{Text: "0.33 days", Direction: domain.TrendPositive}, d.Delivery.Trend)

	require.InDelta(t, 4.5, d.Review.AverageScore, 1e-12)
	require.True(t, d.Review.HalfStar)
}

func TestBuildDashboard_SingleYear(t *testing.T) {
	ds := testhelpers.SampleDataset(t)
	window := shareddomain.MonthWindow{StartYear: 2023, EndYear: 2023}
	sales, err := PrepareAnalysisDataset(ds, window)
	require.NoError(t, err)

	d := BuildDashboard(sales, ds, window)
	require.Equal(t, 2023, d.CurrentYear)
	require.Equal(t, 2023, d.PreviousYear)
	require.Equal(t, "0.00 days", d.Delivery.Trend.Text)
}

func TestBuildDashboard_Empty(t *testing.T) {
	ds := testhelpers.SampleDataset(t)
	window := shareddomain.MonthWindow{StartYear: 2030, EndYear: 2031}
	sales, err := PrepareAnalysisDataset(ds, window)
	require.NoError(t, err)

	d := BuildDashboard(sales, ds, window)
	require.Nil(t, d.RevenuePrevious)
	require.Equal(t, "$0", d.KPIs[0].Value)
	require.Equal(t, domain.TrendNeutral, d.KPIs[0].Trend.Direction)
	require.Empty(t, d.TopCategories)
}
