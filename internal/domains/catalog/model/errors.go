package model

import (
	"errors"
)

var (
	// ErrBookNotFound is returned when no book exists for the given ISBN.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookAlreadyExists is returned when creating a book with a taken ISBN.
	ErrBookAlreadyExists = errors.New("book already exists")

	// ErrNegativeCopies is returned when a copy count would go below zero.
	ErrNegativeCopies = errors.New("copy count cannot be negative")
)

// IsNotFoundError checks if err is a catalog not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}

// IsConflictError checks if err is a catalog uniqueness violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrBookAlreadyExists)
}

// IsValidationError checks if err is a catalog input validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNegativeCopies)
}
