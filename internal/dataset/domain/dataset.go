package domain

import (
	"context"

	catalogdomain "ecomdash/internal/catalog/domain"
	customersdomain "ecomdash/internal/customers/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	reviewsdomain "ecomdash/internal/reviews/domain"
)

// Table identifie une des cinq tables de base
type Table string

const (
	TableOrders     Table = "orders"
	TableOrderItems Table = "order_items"
	TableProducts   Table = "products"
	TableCustomers  Table = "customers"
	TableReviews    Table = "order_reviews"
)

// Tables liste les tables dans l'ordre de chargement
var Tables = []Table{TableOrders, TableOrderItems, TableProducts, TableCustomers, TableReviews}

// FileName retourne le nom du fichier délimité de la table sous le répertoire racine
func (t Table) FileName() string {
	return string(t) + "_dataset.csv"
}

// Dataset regroupe les cinq tables de base, immuables une fois chargées
type Dataset struct {
	Orders     []*ordersdomain.Order
	OrderItems []*ordersdomain.OrderItem
	Products   []*catalogdomain.Product
	Customers  []*customersdomain.Customer
	Reviews    []*reviewsdomain.Review
}

// RowCounts retourne le nombre de lignes par table
func (d *Dataset) RowCounts() map[Table]int {
	return map[Table]int{
		TableOrders:     len(d.Orders),
		TableOrderItems: len(d.OrderItems),
		TableProducts:   len(d.Products),
		TableCustomers:  len(d.Customers),
		TableReviews:    len(d.Reviews),
	}
}

// Source charge un Dataset complet ou échoue sans résultat partiel
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
	Describe() string
}
