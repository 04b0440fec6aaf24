package infrastructure

import (
	"context"
	"database/sql"

	"ecomdash/internal/catalog/domain"
	"ecomdash/internal/shared/infrastructure"
)

// ProductQueryRepository repository pour les requêtes de lecture sur les produits
type ProductQueryRepository struct {
	infrastructure.BaseRepository
}

// NewProductQueryRepository crée un nouveau repository de lecture pour les produits
func NewProductQueryRepository(db *sql.DB) *ProductQueryRepository {
	return &ProductQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll charge tout le catalogue
func (r *ProductQueryRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.Query(ctx, `SELECT p.product_id, p.product_category_name FROM products p`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var (
			id       string
			category sql.NullString
		)
		if err := rows.Scan(&id, &category); err != nil {
			return nil, err
		}

		products = append(products, domain.NewProduct(domain.ProductID(id), infrastructure.NullString(category)))
	}

	return products, rows.Err()
}
