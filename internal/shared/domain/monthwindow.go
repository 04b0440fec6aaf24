package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MonthWindow représente une période inclusive exprimée en (année, mois).
// La granularité est le mois calendaire, pas la date.
//
// Valeurs zéro:
//   - StartYear / EndYear à 0: pas de borne de ce côté
//   - StartMonth à 0: janvier, EndMonth à 0: décembre
type MonthWindow struct {
	StartYear  int `validate:"gte=0"`
	StartMonth int `validate:"gte=0,lte=12"`
	EndYear    int `validate:"gte=0"`
	EndMonth   int `validate:"gte=0,lte=12"`
}

// NewMonthWindow crée une période validée
func NewMonthWindow(startYear, startMonth, endYear, endMonth int) (MonthWindow, error) {
	w := MonthWindow{
		StartYear:  startYear,
		StartMonth: startMonth,
		EndYear:    endYear,
		EndMonth:   endMonth,
	}
	if err := w.Validate(); err != nil {
		return MonthWindow{}, err
	}
	return w, nil
}

// Unbounded retourne une période sans bornes
func Unbounded() MonthWindow {
	return MonthWindow{}
}

// Validate vérifie les bornes de la période
func (w MonthWindow) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid month window: %w", err)
	}
	return nil
}

// HasStart indique si la borne de début est définie
func (w MonthWindow) HasStart() bool {
	return w.StartYear != 0
}

// HasEnd indique si la borne de fin est définie
func (w MonthWindow) HasEnd() bool {
	return w.EndYear != 0
}

// EffectiveStartMonth retourne le mois de début (janvier par défaut)
func (w MonthWindow) EffectiveStartMonth() int {
	if w.StartMonth == 0 {
		return 1
	}
	return w.StartMonth
}

// EffectiveEndMonth retourne le mois de fin (décembre par défaut)
func (w MonthWindow) EffectiveEndMonth() int {
	if w.EndMonth == 0 {
		return 12
	}
	return w.EndMonth
}

// Contains indique si (year, month) est dans la période, bornes incluses
func (w MonthWindow) Contains(year, month int) bool {
	if w.HasStart() {
		sm := w.EffectiveStartMonth()
		if !(year > w.StartYear || (year == w.StartYear && month >= sm)) {
			return false
		}
	}
	if w.HasEnd() {
		em := w.EffectiveEndMonth()
		if !(year < w.EndYear || (year == w.EndYear && month <= em)) {
			return false
		}
	}
	return true
}
