package infrastructure

import (
	"context"
	"database/sql"

	ordersdomain "ecomdash/internal/orders/domain"
	"ecomdash/internal/reviews/domain"
	"ecomdash/internal/shared/infrastructure"
)

// ReviewQueryRepository lecture de la table order_reviews
type ReviewQueryRepository struct {
	infrastructure.BaseRepository
}

// NewReviewQueryRepository crée un nouveau repository de lecture pour les avis
func NewReviewQueryRepository(db *sql.DB) *ReviewQueryRepository {
	return &ReviewQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll charge tous les avis
func (r *ReviewQueryRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	rows, err := r.Query(ctx, `SELECT r.order_id, r.review_score FROM order_reviews r`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var (
			orderID string
			score   sql.NullInt64
		)
		if err := rows.Scan(&orderID, &score); err != nil {
			return nil, err
		}

		var s *int
		if score.Valid {
			v := int(score.Int64)
			s = &v
		}

		reviews = append(reviews, domain.NewReview(ordersdomain.OrderID(orderID), s))
	}

	return reviews, rows.Err()
}
