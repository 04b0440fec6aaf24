package testhelpers

import (
	"testing"

	catalogdomain "ecomdash/internal/catalog/domain"
	customersdomain "ecomdash/internal/customers/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	reviewsdomain "ecomdash/internal/reviews/domain"
)

// DatasetBuilder construit des jeux de données en mémoire pour les tests
type DatasetBuilder struct {
	tb testing.TB
	ds *datasetdomain.Dataset
}

// NewDatasetBuilder crée un builder vide
func NewDatasetBuilder(tb testing.TB) *DatasetBuilder {
	tb.Helper()
	return &DatasetBuilder{tb: tb, ds: &datasetdomain.Dataset{}}
}

// Order ajoute une commande
func (b *DatasetBuilder) Order(id, customerID, status, purchase, delivered string) *DatasetBuilder {
	b.tb.Helper()
	b.ds.Orders = append(b.ds.Orders, ordersdomain.NewOrder(
		ordersdomain.OrderID(id),
		ordersdomain.CustomerID(customerID),
		ordersdomain.OrderStatus(status),
		purchase,
		delivered,
	))
	return b
}

// Item ajoute une ligne de commande
func (b *DatasetBuilder) Item(orderID string, itemID int, productID string, price float64) *DatasetBuilder {
	b.tb.Helper()
	b.ds.OrderItems = append(b.ds.OrderItems,
		ordersdomain.NewOrderItem(ordersdomain.OrderID(orderID), itemID, catalogdomain.ProductID(productID), price, 0))
	return b
}

// Product ajoute un produit; category vide = absente
func (b *DatasetBuilder) Product(id, category string) *DatasetBuilder {
	b.tb.Helper()
	b.ds.Products = append(b.ds.Products, catalogdomain.NewProduct(catalogdomain.ProductID(id), category))
	return b
}

// Customer ajoute un client; state vide = absent
func (b *DatasetBuilder) Customer(id, state string) *DatasetBuilder {
	b.tb.Helper()
	b.ds.Customers = append(b.ds.Customers, customersdomain.NewCustomer(ordersdomain.CustomerID(id), state))
	return b
}

// Review ajoute un avis noté
func (b *DatasetBuilder) Review(orderID string, score int) *DatasetBuilder {
	b.tb.Helper()
	return b.review(orderID, &score)
}

// NullReview ajoute un avis sans note
func (b *DatasetBuilder) NullReview(orderID string) *DatasetBuilder {
	b.tb.Helper()
	return b.review(orderID, nil)
}

func (b *DatasetBuilder) review(orderID string, score *int) *DatasetBuilder {
	b.ds.Reviews = append(b.ds.Reviews, reviewsdomain.NewReview(ordersdomain.OrderID(orderID), score))
	return b
}

// Build retourne le jeu de données
func (b *DatasetBuilder) Build() *datasetdomain.Dataset {
	return b.ds
}

// SampleDataset jeu de données de référence couvrant deux années
//
//	o1 2023-03 delivered 3j, o2 2023-12 delivered 10j, o3 2024-03 delivered 5j,
//	o4 2024-03 canceled, o5 2024-06 delivered sans date de livraison
func SampleDataset(tb testing.TB) *datasetdomain.Dataset {
	tb.Helper()
	return NewDatasetBuilder(tb).
		Customer("c1", "SP").
		Customer("c2", "RJ").
		Customer("c3", "").
		Product("p1", "toys").
		Product("p2", "electronics").
		Product("p3", "").
		Order("o1", "c1", "delivered", "2023-03-01 10:00:00", "2023-03-04 12:00:00").
		Order("o2", "c2", "delivered", "2023-12-10 08:00:00", "2023-12-20 09:30:00").
		Order("o3", "c1", "delivered", "2024-03-05 14:00:00", "2024-03-10 15:00:00").
		Order("o4", "c3", "canceled", "2024-03-07 11:00:00", "").
		Order("o5", "c3", "delivered", "2024-06-01 09:00:00", "").
		Item("o1", 1, "p1", 100).
		Item("o1", 2, "p2", 50).
		Item("o2", 1, "p2", 200).
		Item("o3", 1, "p1", 120).
		Item("o3", 2, "p3", 30).
		Item("o4", 1, "p1", 999).
		Item("o5", 1, "p2", 80).
		Review("o1", 5).
		Review("o2", 2).
		Review("o3", 4).
		Review("o3", 5).
		Review("o4", 1).
		NullReview("o5").
		Build()
}
