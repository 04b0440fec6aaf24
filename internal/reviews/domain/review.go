package domain

import (
	ordersdomain "ecomdash/internal/orders/domain"
)

// Review représente un avis client; une commande peut en avoir plusieurs
type Review struct {
	orderID ordersdomain.OrderID
	score   *int
}

// NewReview crée un avis. score nil signifie note absente.
func NewReview(orderID ordersdomain.OrderID, score *int) *Review {
	return &Review{orderID: orderID, score: score}
}

// OrderID retourne la commande évaluée
func (r *Review) OrderID() ordersdomain.OrderID {
	return r.orderID
}

// Score retourne la note et false si elle est absente
func (r *Review) Score() (int, bool) {
	if r.score == nil {
		return 0, false
	}
	return *r.score, true
}
