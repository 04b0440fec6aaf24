package application

import (
	"fmt"
	"sort"
	"strings"

	"ecomdash/internal/analytics/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// TotalOrders nombre de commandes distinctes
func TotalOrders(sales domain.SalesFactTable) int {
	return len(sales.OrderIDs())
}

// OrdersByPeriod nombre de commandes distinctes par période, ordre croissant
func OrdersByPeriod(sales domain.SalesFactTable, column string) ([]domain.PeriodOrders, error) {
	period, err := domain.ParsePeriod(column)
	if err != nil {
		return nil, err
	}

	sets := make(map[int]map[ordersdomain.OrderID]struct{})
	for i := range sales {
		if !sales[i].HasPurchaseDate() {
			continue
		}
		p := sales[i].PeriodValue(period)
		if sets[p] == nil {
			sets[p] = make(map[ordersdomain.OrderID]struct{})
		}
		sets[p][sales[i].OrderID] = struct{}{}
	}

	result := make([]domain.PeriodOrders, 0, len(sets))
	for _, p := range sortedKeys(sets) {
		result = append(result, domain.PeriodOrders{Period: p, Orders: len(sets[p])})
	}
	return result, nil
}

// OrderStatusDistribution proportion de chaque statut, décroissante.
// Avec year, l'année est dérivée de l'horodatage d'achat; un horodatage vide exclut la commande.
func OrderStatusDistribution(orders []*ordersdomain.Order, year *int) ([]domain.StatusShare, error) {
	counts := make(map[string]int)
	total := 0

	for _, o := range orders {
		if year != nil {
			raw := o.PurchaseTimestamp()
			if strings.TrimSpace(raw) == "" {
				continue
			}
			ts, err := shareddomain.ParseTimestamp(raw)
			if err != nil {
				return nil, fmt.Errorf("order %s purchase timestamp: %w", o.ID(), err)
			}
			if ts.Year() != *year {
				continue
			}
		}
		status := string(o.Status())
		if status == "" {
			continue
		}
		counts[status]++
		total++
	}

	result := make([]domain.StatusShare, 0, len(counts))
	for status, n := range counts {
		result = append(result, domain.StatusShare{Status: status, Proportion: float64(n) / float64(total)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Proportion != result[j].Proportion {
			return result[i].Proportion > result[j].Proportion
		}
		return result[i].Status < result[j].Status
	})
	return result, nil
}
