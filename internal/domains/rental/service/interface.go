package service

import (
	"context"

	"library-rental-backend/internal/domains/rental/model"
)

// Service is the business-logic contract for the rental ledger.
type Service interface {
	RentBook(ctx context.Context, req model.RentalRequest) (*model.Rental, error)
	ReturnBook(ctx context.Context, req model.RentalRequest) (*model.Rental, error)
	ListActiveRentals(ctx context.Context) ([]model.Rental, error)
	ListStudentRentals(ctx context.Context, studentID string) ([]model.Rental, error)
}
