package domain

import (
	ordersdomain "ecomdash/internal/orders/domain"
)

// Customer représente un acheteur et sa localisation
type Customer struct {
	id    ordersdomain.CustomerID
	state string
}

// NewCustomer crée un client
func NewCustomer(id ordersdomain.CustomerID, state string) *Customer {
	return &Customer{id: id, state: state}
}

// ID retourne l'identifiant du client
func (c *Customer) ID() ordersdomain.CustomerID {
	return c.id
}

// State retourne le code de région du client et false s'il est absent
func (c *Customer) State() (string, bool) {
	return c.state, c.state != ""
}
