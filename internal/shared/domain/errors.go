package domain

import "errors"

var (
	// ErrColumnNotFound est retourné quand une colonne de regroupement n'existe pas
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidTimestamp est retourné quand un horodatage ne peut pas être analysé
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrMalformedTable est retourné quand une table source est mal formée
	ErrMalformedTable = errors.New("malformed table")
)
