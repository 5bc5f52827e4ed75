package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"library-rental-backend/internal/domains/rental/model"
	"library-rental-backend/internal/domains/rental/repository"
)

type rentalService struct {
	repo repository.Repository
	now  func() time.Time
}

// NewService creates the rental ledger service.
func NewService(repo repository.Repository) Service {
	return &rentalService{
		repo: repo,
		now:  time.Now,
	}
}

// today returns the current date in UTC; rent and return dates carry no
// time-of-day component.
func (s *rentalService) today() time.Time {
	year, month, day := s.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *rentalService) RentBook(ctx context.Context, req model.RentalRequest) (*model.Rental, error) {
	rental, err := s.repo.Rent(ctx, req.StudentID, req.ISBN, s.today())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("student_id", rental.StudentID).
		Str("isbn", rental.ISBN).
		Time("rent_date", rental.RentDate).
		Msg("book rented")
	return rental, nil
}

func (s *rentalService) ReturnBook(ctx context.Context, req model.RentalRequest) (*model.Rental, error) {
	rental, err := s.repo.Return(ctx, req.StudentID, req.ISBN, s.today())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("student_id", rental.StudentID).
		Str("isbn", rental.ISBN).
		Time("rent_date", rental.RentDate).
		Msg("book returned")
	return rental, nil
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]model.Rental, error) {
	return s.repo.ListActive(ctx)
}

func (s *rentalService) ListStudentRentals(ctx context.Context, studentID string) ([]model.Rental, error) {
	return s.repo.ListByStudent(ctx, studentID)
}
