package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	cataloginfra "ecomdash/internal/catalog/infrastructure"
	customersinfra "ecomdash/internal/customers/infrastructure"
	"ecomdash/internal/dataset/domain"
	ordersinfra "ecomdash/internal/orders/infrastructure"
	reviewsinfra "ecomdash/internal/reviews/infrastructure"
)

// PostgresSource charge le jeu de données depuis PostgreSQL via les repositories de lecture
type PostgresSource struct {
	name      string
	orders    *ordersinfra.OrderQueryRepository
	products  *cataloginfra.ProductQueryRepository
	customers *customersinfra.CustomerQueryRepository
	reviews   *reviewsinfra.ReviewQueryRepository
}

// NewPostgresSource crée une source PostgreSQL
func NewPostgresSource(db *sql.DB, name string) *PostgresSource {
	return &PostgresSource{
		name:      name,
		orders:    ordersinfra.NewOrderQueryRepository(db),
		products:  cataloginfra.NewProductQueryRepository(db),
		customers: customersinfra.NewCustomerQueryRepository(db),
		reviews:   reviewsinfra.NewReviewQueryRepository(db),
	}
}

// Describe retourne une description lisible de la source
func (s *PostgresSource) Describe() string {
	return "postgres:" + s.name
}

// Load lit les cinq tables. Toute erreur annule le chargement complet.
func (s *PostgresSource) Load(ctx context.Context) (*domain.Dataset, error) {
	var (
		ds  domain.Dataset
		err error
	)

	if ds.Orders, err = s.orders.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.TableOrders, err)
	}
	if ds.OrderItems, err = s.orders.FindAllItems(ctx); err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.TableOrderItems, err)
	}
	if ds.Products, err = s.products.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.TableProducts, err)
	}
	if ds.Customers, err = s.customers.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.TableCustomers, err)
	}
	if ds.Reviews, err = s.reviews.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.TableReviews, err)
	}

	return &ds, nil
}
