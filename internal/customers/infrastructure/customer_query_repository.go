package infrastructure

import (
	"context"
	"database/sql"

	"ecomdash/internal/customers/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	"ecomdash/internal/shared/infrastructure"
)

// CustomerQueryRepository lecture de la table customers
type CustomerQueryRepository struct {
	infrastructure.BaseRepository
}

// NewCustomerQueryRepository crée un nouveau repository de lecture pour les clients
func NewCustomerQueryRepository(db *sql.DB) *CustomerQueryRepository {
	return &CustomerQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll charge tous les clients
func (r *CustomerQueryRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.Query(ctx, `SELECT c.customer_id, c.customer_state FROM customers c`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var (
			id    string
			state sql.NullString
		)
		if err := rows.Scan(&id, &state); err != nil {
			return nil, err
		}

		customers = append(customers, domain.NewCustomer(ordersdomain.CustomerID(id), infrastructure.NullString(state)))
	}

	return customers, rows.Err()
}
