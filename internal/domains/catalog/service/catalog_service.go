package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/internal/domains/catalog/repository"
)

type catalogService struct {
	repo repository.Repository
}

// NewService creates the catalog service.
func NewService(repo repository.Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *catalogService) GetBook(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

func (s *catalogService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	// Guard here as well as in the DTO so the invariant holds for every caller,
	// not just the HTTP surface.
	if req.Num < 0 {
		return nil, model.ErrNegativeCopies
	}

	book := &model.Book{
		ISBN:  req.ISBN,
		Title: req.Title,
		Num:   req.Num,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Info().Str("isbn", book.ISBN).Int("num", book.Num).Msg("book created")
	return book, nil
}

func (s *catalogService) UpdateBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error) {
	if req.Num != nil && *req.Num < 0 {
		return nil, model.ErrNegativeCopies
	}

	// An empty title means "leave unchanged", same as omitting the field.
	title := req.Title
	if title != nil && *title == "" {
		title = nil
	}

	book, err := s.repo.Update(ctx, isbn, title, req.Num)
	if err != nil {
		return nil, err
	}

	log.Info().Str("isbn", isbn).Msg("book updated")
	return book, nil
}

func (s *catalogService) DeleteBook(ctx context.Context, isbn string) (*model.Book, error) {
	book, err := s.repo.Delete(ctx, isbn)
	if err != nil {
		return nil, err
	}

	log.Info().Str("isbn", isbn).Msg("book deleted")
	return book, nil
}
