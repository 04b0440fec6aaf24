package domain

import (
	catalogdomain "ecomdash/internal/catalog/domain"
)

// OrderItem représente une ligne de commande; (orderID, itemID) est unique
type OrderItem struct {
	orderID      OrderID
	itemID       int
	productID    catalogdomain.ProductID
	price        float64
	freightValue float64
}

// NewOrderItem crée un item de commande
func NewOrderItem(
	orderID OrderID,
	itemID int,
	productID catalogdomain.ProductID,
	price float64,
	freightValue float64,
) *OrderItem {
	return &OrderItem{
		orderID:      orderID,
		itemID:       itemID,
		productID:    productID,
		price:        price,
		freightValue: freightValue,
	}
}

// OrderID retourne l'identifiant de la commande
func (oi *OrderItem) OrderID() OrderID {
	return oi.orderID
}

// ItemID retourne le numéro de ligne dans la commande
func (oi *OrderItem) ItemID() int {
	return oi.itemID
}

// ProductID retourne l'identifiant du produit
func (oi *OrderItem) ProductID() catalogdomain.ProductID {
	return oi.productID
}

// Price retourne le prix de la ligne
func (oi *OrderItem) Price() float64 {
	return oi.price
}

// FreightValue retourne les frais de port de la ligne
func (oi *OrderItem) FreightValue() float64 {
	return oi.freightValue
}
