package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/pkg/cache"
)

const bookCacheTTL = 5 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewRepository creates the PostgreSQL catalog repository with a read-through
// cache on book lookups.
func NewRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if hit, err := r.cache.Get(ctx, model.AllBooksCacheKey, &books); err != nil {
		log.Warn().Err(err).Msg("book list cache read failed")
	} else if hit {
		return books, nil
	}

	query := `
		SELECT isbn, title, num, created_at, updated_at
		FROM books
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books = make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(&book.ISBN, &book.Title, &book.Num, &book.CreatedAt, &book.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if err := r.cache.Set(ctx, model.AllBooksCacheKey, books, bookCacheTTL); err != nil {
		log.Warn().Err(err).Msg("book list cache write failed")
	}

	return books, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	if hit, err := r.cache.Get(ctx, model.BookCacheKey(isbn), &book); err != nil {
		log.Warn().Err(err).Str("isbn", isbn).Msg("book cache read failed")
	} else if hit {
		return &book, nil
	}

	query := `
		SELECT isbn, title, num, created_at, updated_at
		FROM books
		WHERE isbn = $1
	`

	err := r.pool.QueryRow(ctx, query, isbn).Scan(
		&book.ISBN, &book.Title, &book.Num, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if err := r.cache.Set(ctx, model.BookCacheKey(isbn), book, bookCacheTTL); err != nil {
		log.Warn().Err(err).Str("isbn", isbn).Msg("book cache write failed")
	}

	return &book, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (isbn, title, num, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, book.ISBN, book.Title, book.Num).
		Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrBookAlreadyExists
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}

	r.invalidate(ctx, book.ISBN)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, isbn string, title *string, num *int) (*model.Book, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{isbn}
	idx := 2

	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, *title)
		idx++
	}
	if num != nil {
		setClauses = append(setClauses, fmt.Sprintf("num = $%d", idx))
		args = append(args, *num)
		idx++
	}

	query := fmt.Sprintf(`
		UPDATE books
		SET %s
		WHERE isbn = $1
		RETURNING isbn, title, num, created_at, updated_at
	`, strings.Join(setClauses, ", "))

	var book model.Book
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&book.ISBN, &book.Title, &book.Num, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx, isbn)
	return &book, nil
}

func (r *postgresRepository) Delete(ctx context.Context, isbn string) (*model.Book, error) {
	query := `
		DELETE FROM books
		WHERE isbn = $1
		RETURNING isbn, title, num, created_at, updated_at
	`

	var book model.Book
	err := r.pool.QueryRow(ctx, query, isbn).Scan(
		&book.ISBN, &book.Title, &book.Num, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	r.invalidate(ctx, isbn)
	return &book, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, isbn string) {
	if err := r.cache.Delete(ctx, model.BookCacheKey(isbn), model.AllBooksCacheKey); err != nil {
		log.Warn().Err(err).Str("isbn", isbn).Msg("book cache invalidation failed")
	}
}
