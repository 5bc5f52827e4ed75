package repository

import (
	"context"

	"library-rental-backend/internal/domains/roster/model"
)

// Repository is the data access contract for the student roster.
type Repository interface {
	// List returns all registered students.
	List(ctx context.Context) ([]model.Student, error)

	// GetByID returns the student with the given id.
	// Returns model.ErrStudentNotFound when absent.
	GetByID(ctx context.Context, studentID string) (*model.Student, error)

	// Create persists a new student.
	// Returns model.ErrStudentAlreadyExists on a duplicate id.
	Create(ctx context.Context, student *model.Student) error
}
