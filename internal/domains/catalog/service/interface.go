package service

import (
	"context"

	"library-rental-backend/internal/domains/catalog/model"
)

// Service is the business-logic contract for the book catalog.
type Service interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, isbn string) (*model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, isbn string) (*model.Book, error)
}
