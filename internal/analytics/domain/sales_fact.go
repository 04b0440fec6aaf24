package domain

import (
	"fmt"
	"time"

	catalogdomain "ecomdash/internal/catalog/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// SalesFact représente une ligne de commande enrichie: une ligne par item
type SalesFact struct {
	OrderID      ordersdomain.OrderID
	OrderItemID  int
	ProductID    catalogdomain.ProductID
	Price        float64
	FreightValue float64
	CustomerID   ordersdomain.CustomerID
	OrderStatus  ordersdomain.OrderStatus

	// valeurs brutes de la source
	PurchaseRaw  string
	DeliveredRaw string

	// renseignés par l'extraction temporelle; valeurs zéro si l'horodatage d'achat est absent
	PurchaseTimestamp time.Time
	Year              int
	Month             int

	// renseignés par le calcul de livraison; nil si la date de livraison est absente
	DeliveredCustomerDate *time.Time
	DeliverySpeed         *int
}

// Period nomme une colonne de regroupement temporel
type Period string

const (
	PeriodYear  Period = "year"
	PeriodMonth Period = "month"
)

// ParsePeriod valide un nom de colonne de regroupement
func ParsePeriod(column string) (Period, error) {
	switch p := Period(column); p {
	case PeriodYear, PeriodMonth:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", shareddomain.ErrColumnNotFound, column)
}

// HasPurchaseDate indique si l'horodatage d'achat est renseigné
func (f *SalesFact) HasPurchaseDate() bool {
	return !f.PurchaseTimestamp.IsZero()
}

// PeriodValue retourne la valeur de la colonne de regroupement pour la ligne
func (f *SalesFact) PeriodValue(p Period) int {
	if p == PeriodMonth {
		return f.Month
	}
	return f.Year
}

// SalesFactTable table de faits; chaque étape du pipeline produit une nouvelle table
type SalesFactTable []SalesFact

// Len retourne le nombre de lignes
func (t SalesFactTable) Len() int {
	return len(t)
}

// OrderIDs retourne les commandes distinctes dans l'ordre de première apparition
func (t SalesFactTable) OrderIDs() []ordersdomain.OrderID {
	seen := make(map[ordersdomain.OrderID]struct{}, len(t))
	ids := make([]ordersdomain.OrderID, 0, len(t))
	for i := range t {
		if _, ok := seen[t[i].OrderID]; ok {
			continue
		}
		seen[t[i].OrderID] = struct{}{}
		ids = append(ids, t[i].OrderID)
	}
	return ids
}
