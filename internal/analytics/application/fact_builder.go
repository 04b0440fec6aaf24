package application

import (
	"fmt"
	"math"
	"time"

	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

const day = 24 * time.Hour

// JoinSales joint les lignes de commande aux commandes (jointure interne sur order_id).
// Les items sans commande sont ignorés; une commande dupliquée multiplie les lignes.
func JoinSales(items []*ordersdomain.OrderItem, orders []*ordersdomain.Order) domain.SalesFactTable {
	byID := make(map[ordersdomain.OrderID][]*ordersdomain.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = append(byID[o.ID()], o)
	}

	joined := make(domain.SalesFactTable, 0, len(items))
	for _, it := range items {
		for _, o := range byID[it.OrderID()] {
			joined = append(joined, domain.SalesFact{
				OrderID:      it.OrderID(),
				OrderItemID:  it.ItemID(),
				ProductID:    it.ProductID(),
				Price:        it.Price(),
				FreightValue: it.FreightValue(),
				CustomerID:   o.CustomerID(),
				OrderStatus:  o.Status(),
				PurchaseRaw:  o.PurchaseTimestamp(),
				DeliveredRaw: o.DeliveredCustomerDate(),
			})
		}
	}
	return joined
}

// ExtractTemporalFeatures analyse l'horodatage d'achat et dérive year et month.
// Un horodatage absent laisse year et month à zéro; un horodatage invalide est fatal pour toute la table.
func ExtractTemporalFeatures(sales domain.SalesFactTable) (domain.SalesFactTable, error) {
	out := make(domain.SalesFactTable, len(sales))
	for i, row := range sales {
		ts, err := shareddomain.ParseOptionalTimestamp(row.PurchaseRaw)
		if err != nil {
			return nil, fmt.Errorf("order %s purchase timestamp: %w", row.OrderID, err)
		}
		row.PurchaseTimestamp, row.Year, row.Month = time.Time{}, 0, 0
		if ts != nil {
			row.PurchaseTimestamp = *ts
			row.Year = ts.Year()
			row.Month = int(ts.Month())
		}
		out[i] = row
	}
	return out, nil
}

// FilterDelivered garde les lignes au statut "delivered" (égalité exacte)
func FilterDelivered(sales domain.SalesFactTable) domain.SalesFactTable {
	out := make(domain.SalesFactTable, 0, len(sales))
	for _, row := range sales {
		if row.OrderStatus.IsDelivered() {
			out = append(out, row)
		}
	}
	return out
}

// FilterByDateRange garde les lignes dont (year, month) est dans la période, bornes incluses.
// Une ligne sans date d'achat ne passe qu'une période sans bornes.
func FilterByDateRange(sales domain.SalesFactTable, window shareddomain.MonthWindow) domain.SalesFactTable {
	bounded := window.HasStart() || window.HasEnd()
	out := make(domain.SalesFactTable, 0, len(sales))
	for _, row := range sales {
		if !row.HasPurchaseDate() {
			if !bounded {
				out = append(out, row)
			}
			continue
		}
		if window.Contains(row.Year, row.Month) {
			out = append(out, row)
		}
	}
	return out
}

// AddDeliveryMetrics analyse la date de livraison et calcule le délai en jours entiers.
// Date de livraison ou d'achat absente: délai nil. Délai négatif conservé tel quel.
func AddDeliveryMetrics(sales domain.SalesFactTable) (domain.SalesFactTable, error) {
	out := make(domain.SalesFactTable, len(sales))
	for i, row := range sales {
		delivered, err := shareddomain.ParseOptionalTimestamp(row.DeliveredRaw)
		if err != nil {
			return nil, fmt.Errorf("order %s delivered date: %w", row.OrderID, err)
		}
		row.DeliveredCustomerDate = delivered
		row.DeliverySpeed = nil
		if delivered != nil && row.HasPurchaseDate() {
			speed := int(math.Floor(float64(delivered.Sub(row.PurchaseTimestamp)) / float64(day)))
			row.DeliverySpeed = &speed
		}
		out[i] = row
	}
	return out, nil
}

// PrepareAnalysisDataset construit la table de faits: jointure, extraction temporelle,
// filtre "delivered", filtre de période puis calcul des délais de livraison
func PrepareAnalysisDataset(ds *datasetdomain.Dataset, window shareddomain.MonthWindow) (domain.SalesFactTable, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	sales, err := ExtractTemporalFeatures(JoinSales(ds.OrderItems, ds.Orders))
	if err != nil {
		return nil, err
	}

	sales = FilterByDateRange(FilterDelivered(sales), window)

	return AddDeliveryMetrics(sales)
}
