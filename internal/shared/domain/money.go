package domain

import (
	"errors"
	"fmt"
)

// DefaultCurrency est la devise des montants du jeu de données
const DefaultCurrency = "USD"

// Money représente une valeur monétaire avec garanties d'invariants
type Money struct {
	amount   float64
	currency string
}

// NewMoney crée une nouvelle instance de Money avec validation
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// USD crée un montant en dollars. Les montants négatifs sont ramenés à zéro.
func USD(amount float64) Money {
	if amount < 0 {
		amount = 0
	}
	return Money{amount: amount, currency: DefaultCurrency}
}

// Amount retourne le montant
func (m Money) Amount() float64 {
	return m.amount
}

// Currency retourne la devise
func (m Money) Currency() string {
	return m.currency
}

// Add additionne deux Money (même devise requise)
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
	}, nil
}

// IsZero vérifie si le montant est zéro
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Compact formate le montant pour une carte KPI ($300K, $2.1M, $42)
func (m Money) Compact() string {
	switch {
	case m.amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", m.amount/1_000_000)
	case m.amount >= 1_000:
		return fmt.Sprintf("$%.0fK", m.amount/1_000)
	default:
		return fmt.Sprintf("$%.0f", m.amount)
	}
}

// String formate le montant avec deux décimales
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}
