package application

import (
	"fmt"
	"math"
	"strings"

	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

const dashboardTopCategories = 10

// ComparisonPeriods année courante (fin de période) et année de comparaison
func ComparisonPeriods(window shareddomain.MonthWindow) (current, previous int) {
	current = window.EndYear
	if window.EndYear > window.StartYear {
		return current, window.EndYear - 1
	}
	return current, window.StartYear
}

// TrendIndicator évolution relative formatée; neutre si la période précédente est nulle
func TrendIndicator(current, previous float64) domain.Trend {
	if previous == 0 || math.IsNaN(current) || math.IsNaN(previous) {
		return domain.Trend{Text: "0.00%", Direction: domain.TrendNeutral}
	}
	change := (current - previous) / previous
	return domain.Trend{Text: fmt.Sprintf("%.2f%%", math.Abs(change)*100), Direction: direction(change >= 0)}
}

// DeliveryTrend écart de délai moyen; une livraison plus rapide est positive
func DeliveryTrend(current, previous float64, hasPrevious bool) domain.Trend {
	if !hasPrevious || previous == 0 {
		return domain.Trend{Text: "0.00 days", Direction: domain.TrendNeutral}
	}
	change := previous - current
	switch {
	case change > 0:
		return domain.Trend{Text: fmt.Sprintf("%.2f days", math.Abs(change)), Direction: domain.TrendPositive}
	case change < 0:
		return domain.Trend{Text: fmt.Sprintf("%.2f days", math.Abs(change)), Direction: domain.TrendNegative}
	default:
		return domain.Trend{Text: "0.00 days", Direction: domain.TrendNeutral}
	}
}

const (
	// halfStarMarker suit les étoiles pleines quand la partie décimale atteint 0.5
	halfStarMarker = "✓"
	// growthTrendText la carte de croissance porte sa valeur, pas d'écart
	growthTrendText = "—"
)

// StarRating étoiles pleines et demi-étoile pour une note moyenne
func StarRating(score float64) domain.ReviewCard {
	full := int(score)
	half := score-math.Floor(score) >= 0.5
	display := strings.Repeat("★", max(full, 0))
	if half {
		display += halfStarMarker
	}
	return domain.ReviewCard{AverageScore: score, FullStars: full, HalfStar: half, Display: display}
}

func direction(positive bool) domain.TrendDirection {
	if positive {
		return domain.TrendPositive
	}
	return domain.TrendNegative
}

// BuildDashboard assemble les données du tableau de bord à partir de la table de faits filtrée
func BuildDashboard(sales domain.SalesFactTable, ds *datasetdomain.Dataset, window shareddomain.MonthWindow) domain.Dashboard {
	currentYear, previousYear := ComparisonPeriods(resolveWindow(sales, window))
	current := filterYear(sales, currentYear)
	previous := filterYear(sales, previousYear)
	hasPrevious := previous.Len() > 0

	revenueCur, revenuePrev := TotalRevenue(current), TotalRevenue(previous)
	ordersCur, ordersPrev := TotalOrders(current), TotalOrders(previous)
	aovCur, aovPrev := AverageOrderValue(current), AverageOrderValue(previous)
	growth := RevenueGrowth(revenueCur, revenuePrev)

	d := domain.Dashboard{
		CurrentYear:  currentYear,
		PreviousYear: previousYear,
		KPIs: []domain.KPICard{
			{
				Label: "Total Revenue",
				Value: shareddomain.USD(revenueCur).Compact(),
				Raw:   revenueCur,
				Trend: TrendIndicator(revenueCur, revenuePrev),
			},
			{
				Label: "Monthly Growth",
				Value: fmt.Sprintf("%.2f%%", growth*100),
				Raw:   growth,
				Trend: domain.Trend{Text: growthTrendText, Direction: direction(growth >= 0)},
			},
			{
				Label: "Average Order Value",
				Value: shareddomain.USD(aovCur).Compact(),
				Raw:   aovCur,
				Trend: TrendIndicator(aovCur, aovPrev),
			},
			{
				Label: "Total Orders",
				Value: fmt.Sprintf("%d", ordersCur),
				Raw:   float64(ordersCur),
				Trend: TrendIndicator(float64(ordersCur), float64(ordersPrev)),
			},
		},
		RevenueCurrent:  monthlySeries(current, currentYear),
		TopCategories:   TopCategories(current, ds.Products, dashboardTopCategories),
		RevenueByState:  RevenueByState(current, ds.Customers),
		DeliveryRatings: DeliveryTimeRatingCorrelation(current, ds.Reviews),
		Review:          StarRating(AverageReviewScore(current, ds.Reviews)),
	}

	if hasPrevious {
		prev := monthlySeries(previous, previousYear)
		d.RevenuePrevious = &prev
	}

	speedCur := AverageDeliverySpeed(current)
	speedPrev := speedCur
	if hasPrevious {
		speedPrev = AverageDeliverySpeed(previous)
	}
	d.Delivery = domain.DeliveryCard{AverageDays: speedCur, Trend: DeliveryTrend(speedCur, speedPrev, hasPrevious)}

	return d
}

// resolveWindow remplace une borne d'année absente par l'année extrême des données
func resolveWindow(sales domain.SalesFactTable, window shareddomain.MonthWindow) shareddomain.MonthWindow {
	resolveStart, resolveEnd := !window.HasStart(), !window.HasEnd()
	for _, row := range sales {
		if !row.HasPurchaseDate() {
			continue
		}
		if resolveStart && (window.StartYear == 0 || row.Year < window.StartYear) {
			window.StartYear = row.Year
		}
		if resolveEnd && row.Year > window.EndYear {
			window.EndYear = row.Year
		}
	}
	return window
}

func filterYear(sales domain.SalesFactTable, year int) domain.SalesFactTable {
	out := make(domain.SalesFactTable, 0, len(sales))
	for _, row := range sales {
		if row.HasPurchaseDate() && row.Year == year {
			out = append(out, row)
		}
	}
	return out
}

func monthlySeries(sales domain.SalesFactTable, year int) domain.MonthlySeries {
	points, _ := RevenueByPeriod(sales, string(domain.PeriodMonth))
	return domain.MonthlySeries{Year: year, Points: points}
}
