package model

import (
	"errors"
)

var (
	// ErrBookUnavailable is returned when renting a book with no copies left.
	ErrBookUnavailable = errors.New("book is not available for rent")

	// ErrActiveRentalExists is returned when the student already holds an
	// open rental for this book.
	ErrActiveRentalExists = errors.New("student already has an active rental for this book")

	// ErrActiveRentalNotFound is returned when returning a book that the
	// student has no open rental for.
	ErrActiveRentalNotFound = errors.New("active rental record not found")
)

// IsUnavailableError checks if err means no copies are left.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrBookUnavailable)
}

// IsConflictError checks if err is a double-active-rental violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrActiveRentalExists)
}

// IsNotFoundError checks if err means there is no open rental to close.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrActiveRentalNotFound)
}
