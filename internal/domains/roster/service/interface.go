package service

import (
	"context"

	"library-rental-backend/internal/domains/roster/model"
)

// Service is the business-logic contract for the student roster.
type Service interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	GetStudent(ctx context.Context, studentID string) (*model.Student, error)
	CreateStudent(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error)
}
