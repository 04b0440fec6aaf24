package infrastructure

import (
	"context"
	"database/sql"

	catalogdomain "ecomdash/internal/catalog/domain"
	"ecomdash/internal/orders/domain"
	"ecomdash/internal/shared/infrastructure"
)

// OrderQueryRepository repository de lecture des tables orders et order_items
type OrderQueryRepository struct {
	infrastructure.BaseRepository
}

// NewOrderQueryRepository crée un nouveau repository de lecture pour les commandes
func NewOrderQueryRepository(db *sql.DB) *OrderQueryRepository {
	return &OrderQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll charge toutes les commandes. Les horodatages sont lus en texte.
func (r *OrderQueryRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT o.order_id, o.customer_id, o.order_status,
		       o.order_purchase_timestamp::text, o.order_delivered_customer_date::text
		FROM orders o
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var (
			id, customerID        string
			status, purchase      sql.NullString
			deliveredCustomerDate sql.NullString
		)
		if err := rows.Scan(&id, &customerID, &status, &purchase, &deliveredCustomerDate); err != nil {
			return nil, err
		}

		orders = append(orders, domain.NewOrder(
			domain.OrderID(id),
			domain.CustomerID(customerID),
			domain.OrderStatus(infrastructure.NullString(status)),
			infrastructure.NullString(purchase),
			infrastructure.NullString(deliveredCustomerDate),
		))
	}

	return orders, rows.Err()
}

// FindAllItems charge toutes les lignes de commande
func (r *OrderQueryRepository) FindAllItems(ctx context.Context) ([]*domain.OrderItem, error) {
	query := `
		SELECT oi.order_id, oi.order_item_id, oi.product_id, oi.price, oi.freight_value
		FROM order_items oi
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		var (
			orderID, productID string
			itemID             int
			price, freight     float64
		)
		if err := rows.Scan(&orderID, &itemID, &productID, &price, &freight); err != nil {
			return nil, err
		}

		items = append(items, domain.NewOrderItem(
			domain.OrderID(orderID),
			itemID,
			catalogdomain.ProductID(productID),
			price,
			freight,
		))
	}

	return items, rows.Err()
}
