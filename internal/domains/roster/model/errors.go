package model

import (
	"errors"
)

var (
	// ErrStudentNotFound is returned when no student exists for the given id.
	ErrStudentNotFound = errors.New("student not found")

	// ErrStudentAlreadyExists is returned when registering a taken student id.
	ErrStudentAlreadyExists = errors.New("student already exists")
)

// IsNotFoundError checks if err is a roster not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrStudentNotFound)
}

// IsConflictError checks if err is a roster uniqueness violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrStudentAlreadyExists)
}
