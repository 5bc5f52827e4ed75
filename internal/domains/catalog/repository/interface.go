package repository

import (
	"context"

	"library-rental-backend/internal/domains/catalog/model"
)

// Repository is the data access contract for the book catalog.
type Repository interface {
	// List returns all books in natural store order.
	List(ctx context.Context) ([]model.Book, error)

	// GetByISBN returns the book with the given ISBN.
	// Returns model.ErrBookNotFound when absent.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Create persists a new book.
	// Returns model.ErrBookAlreadyExists on a duplicate ISBN.
	Create(ctx context.Context, book *model.Book) error

	// Update applies a partial update; nil fields are left unchanged.
	// Returns model.ErrBookNotFound when absent.
	Update(ctx context.Context, isbn string, title *string, num *int) (*model.Book, error)

	// Delete removes the book and returns the deleted value.
	// Returns model.ErrBookNotFound when absent.
	Delete(ctx context.Context, isbn string) (*model.Book, error)
}
