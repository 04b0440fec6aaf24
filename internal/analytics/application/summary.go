package application

import (
	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	ordersdomain "ecomdash/internal/orders/domain"
)

// CalculateKeyMetrics regroupe les indicateurs principaux en un appel
func CalculateKeyMetrics(sales domain.SalesFactTable, ds *datasetdomain.Dataset) domain.KeyMetrics {
	customers := make(map[ordersdomain.CustomerID]struct{})
	for i := range sales {
		customers[sales[i].CustomerID] = struct{}{}
	}

	return domain.KeyMetrics{
		TotalRevenue:             TotalRevenue(sales),
		TotalOrders:              TotalOrders(sales),
		AverageOrderValue:        AverageOrderValue(sales),
		AverageReviewScore:       AverageReviewScore(sales, ds.Reviews),
		AverageDeliverySpeedDays: AverageDeliverySpeed(sales),
		UniqueCustomers:          len(customers),
	}
}
