package repository

import (
	"context"
	"time"

	"library-rental-backend/internal/domains/rental/model"
)

// Repository is the data access contract for the rental ledger. Rent and
// Return run as single transactions that keep the book copy count consistent
// with the set of open rentals.
type Repository interface {
	// Rent opens a rental for (studentID, isbn) dated rentDate and decrements
	// the book's copy count, atomically.
	// Returns roster's ErrStudentNotFound, catalog's ErrBookNotFound,
	// model.ErrBookUnavailable or model.ErrActiveRentalExists.
	Rent(ctx context.Context, studentID, isbn string, rentDate time.Time) (*model.Rental, error)

	// Return closes the open rental for (studentID, isbn) as of returnDate and
	// increments the book's copy count, atomically. A book deleted since the
	// rent is not an error; the inventory adjustment is skipped.
	// Returns model.ErrActiveRentalNotFound when no rental is open.
	Return(ctx context.Context, studentID, isbn string, returnDate time.Time) (*model.Rental, error)

	// ListActive returns all currently open rentals.
	ListActive(ctx context.Context) ([]model.Rental, error)

	// ListByStudent returns the full rental history of one student.
	// Returns roster's ErrStudentNotFound when the student is not registered.
	ListByStudent(ctx context.Context, studentID string) ([]model.Rental, error)
}
