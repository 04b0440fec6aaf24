package application

import (
	"sort"

	"ecomdash/internal/analytics/domain"
	catalogdomain "ecomdash/internal/catalog/domain"
	customersdomain "ecomdash/internal/customers/domain"
	ordersdomain "ecomdash/internal/orders/domain"
)

// RevenueByCategory chiffre d'affaires par catégorie (jointure interne sur product_id), décroissant.
// Les produits sans catégorie sont ignorés.
func RevenueByCategory(sales domain.SalesFactTable, products []*catalogdomain.Product) []domain.CategoryRevenue {
	categories := make(map[catalogdomain.ProductID][]string, len(products))
	for _, p := range products {
		if category, ok := p.Category(); ok {
			categories[p.ID()] = append(categories[p.ID()], category)
		}
	}

	totals := make(map[string]float64)
	for i := range sales {
		for _, category := range categories[sales[i].ProductID] {
			totals[category] += sales[i].Price
		}
	}

	result := make([]domain.CategoryRevenue, 0, len(totals))
	for category, revenue := range totals {
		result = append(result, domain.CategoryRevenue{Category: category, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// TopCategories les n premières catégories par chiffre d'affaires; n <= 0 donne une liste vide
func TopCategories(sales domain.SalesFactTable, products []*catalogdomain.Product, n int) []domain.CategoryRevenue {
	all := RevenueByCategory(sales, products)
	if n <= 0 {
		return all[:0]
	}
	if n < len(all) {
		return all[:n]
	}
	return all
}

// RevenueByState chiffre d'affaires par état du client, décroissant. Les états absents sont ignorés.
func RevenueByState(sales domain.SalesFactTable, customers []*customersdomain.Customer) []domain.StateRevenue {
	states := make(map[ordersdomain.CustomerID][]string, len(customers))
	for _, c := range customers {
		if state, ok := c.State(); ok {
			states[c.ID()] = append(states[c.ID()], state)
		}
	}

	totals := make(map[string]float64)
	for i := range sales {
		for _, state := range states[sales[i].CustomerID] {
			totals[state] += sales[i].Price
		}
	}

	result := make([]domain.StateRevenue, 0, len(totals))
	for state, revenue := range totals {
		result = append(result, domain.StateRevenue{State: state, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].State < result[j].State
	})
	return result
}
