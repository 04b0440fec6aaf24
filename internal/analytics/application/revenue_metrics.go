package application

import (
	"sort"

	"ecomdash/internal/analytics/domain"
	ordersdomain "ecomdash/internal/orders/domain"
)

// TotalRevenue somme des prix des items (hors frais de port)
func TotalRevenue(sales domain.SalesFactTable) float64 {
	var total float64
	for i := range sales {
		total += sales[i].Price
	}
	return total
}

// RevenueByPeriod chiffre d'affaires par période, ordre croissant; les lignes sans date d'achat sont ignorées
func RevenueByPeriod(sales domain.SalesFactTable, column string) ([]domain.PeriodRevenue, error) {
	period, err := domain.ParsePeriod(column)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for i := range sales {
		if !sales[i].HasPurchaseDate() {
			continue
		}
		totals[sales[i].PeriodValue(period)] += sales[i].Price
	}

	result := make([]domain.PeriodRevenue, 0, len(totals))
	for _, p := range sortedKeys(totals) {
		result = append(result, domain.PeriodRevenue{Period: p, Revenue: totals[p]})
	}
	return result, nil
}

// RevenueGrowth variation relative entre deux périodes; 0 si la période précédente est nulle
func RevenueGrowth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous
}

// MonthlyGrowthTrend variation d'un mois sur l'autre du chiffre d'affaires groupé par mois.
// Le premier mois, et tout mois suivant un mois à zéro, n'a pas de variation.
func MonthlyGrowthTrend(sales domain.SalesFactTable) []domain.GrowthPoint {
	monthly, _ := RevenueByPeriod(sales, string(domain.PeriodMonth))

	points := make([]domain.GrowthPoint, 0, len(monthly))
	for i, m := range monthly {
		point := domain.GrowthPoint{Month: m.Period, Revenue: m.Revenue}
		if i > 0 && monthly[i-1].Revenue != 0 {
			change := (m.Revenue - monthly[i-1].Revenue) / monthly[i-1].Revenue
			point.Change = &change
		}
		points = append(points, point)
	}
	return points
}

// AverageOrderValue moyenne des totaux par commande
func AverageOrderValue(sales domain.SalesFactTable) float64 {
	perOrder := make(map[ordersdomain.OrderID]float64)
	for i := range sales {
		perOrder[sales[i].OrderID] += sales[i].Price
	}
	if len(perOrder) == 0 {
		return 0
	}

	var sum float64
	for _, v := range perOrder {
		sum += v
	}
	return sum / float64(len(perOrder))
}

// AverageOrderValueByPeriod panier moyen calculé sur chaque tranche de période, ordre croissant
func AverageOrderValueByPeriod(sales domain.SalesFactTable, column string) ([]domain.PeriodAOV, error) {
	period, err := domain.ParsePeriod(column)
	if err != nil {
		return nil, err
	}

	slices := make(map[int]domain.SalesFactTable)
	for i := range sales {
		if !sales[i].HasPurchaseDate() {
			continue
		}
		p := sales[i].PeriodValue(period)
		slices[p] = append(slices[p], sales[i])
	}

	result := make([]domain.PeriodAOV, 0, len(slices))
	for _, p := range sortedKeys(slices) {
		result = append(result, domain.PeriodAOV{Period: p, AverageOrderValue: AverageOrderValue(slices[p])})
	}
	return result, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
