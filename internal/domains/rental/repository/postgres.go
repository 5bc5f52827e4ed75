package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	catalogModel "library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/internal/domains/rental/model"
	rosterModel "library-rental-backend/internal/domains/roster/model"
	"library-rental-backend/pkg/cache"
	"library-rental-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewRepository creates the PostgreSQL rental ledger repository. The cache is
// needed because rent/return change book copy counts behind the catalog's back.
func NewRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Rent(ctx context.Context, studentID, isbn string, rentDate time.Time) (*model.Rental, error) {
	rental, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Rental, error) {
		var studentExists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`,
			studentID,
		).Scan(&studentExists)
		if err != nil {
			return nil, fmt.Errorf("failed to check student: %w", err)
		}
		if !studentExists {
			return nil, rosterModel.ErrStudentNotFound
		}

		// Lock the book row for the rest of the transaction so concurrent
		// rents serialize: the availability check and the decrement must see
		// the same num.
		var num int
		err = tx.QueryRow(ctx,
			`SELECT num FROM books WHERE isbn = $1 FOR UPDATE`,
			isbn,
		).Scan(&num)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, catalogModel.ErrBookNotFound
			}
			return nil, fmt.Errorf("failed to lock book: %w", err)
		}

		if num <= 0 {
			return nil, model.ErrBookUnavailable
		}

		var hasActive bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(
				SELECT 1 FROM rentals
				WHERE student_id = $1 AND isbn = $2 AND return_date IS NULL
			)`,
			studentID, isbn,
		).Scan(&hasActive)
		if err != nil {
			return nil, fmt.Errorf("failed to check active rental: %w", err)
		}
		if hasActive {
			return nil, model.ErrActiveRentalExists
		}

		_, err = tx.Exec(ctx,
			`UPDATE books SET num = num - 1, updated_at = NOW() WHERE isbn = $1`,
			isbn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement copy count: %w", err)
		}

		rental := &model.Rental{
			StudentID: studentID,
			ISBN:      isbn,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO rentals (student_id, isbn, rent_date, return_date)
			 VALUES ($1, $2, $3::date, NULL)
			 RETURNING rent_date`,
			studentID, isbn, rentDate,
		).Scan(&rental.RentDate)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return nil, model.ErrActiveRentalExists
			}
			return nil, fmt.Errorf("failed to insert rental: %w", err)
		}

		return rental, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateBook(ctx, isbn)
	return rental, nil
}

func (r *postgresRepository) Return(ctx context.Context, studentID, isbn string, returnDate time.Time) (*model.Rental, error) {
	rental, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Rental, error) {
		// Lock the book row first, same order as Rent, so the two operations
		// cannot deadlock against each other.
		bookExists := true
		var lock bool
		err := tx.QueryRow(ctx,
			`SELECT true FROM books WHERE isbn = $1 FOR UPDATE`,
			isbn,
		).Scan(&lock)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("failed to lock book: %w", err)
			}
			// The book was deleted while rented out. The rental still closes;
			// only the inventory adjustment is skipped.
			bookExists = false
		}

		var rental model.Rental
		err = tx.QueryRow(ctx,
			`SELECT student_id, isbn, rent_date, return_date
			 FROM rentals
			 WHERE student_id = $1 AND isbn = $2 AND return_date IS NULL
			 FOR UPDATE`,
			studentID, isbn,
		).Scan(&rental.StudentID, &rental.ISBN, &rental.RentDate, &rental.ReturnDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrActiveRentalNotFound
			}
			return nil, fmt.Errorf("failed to find active rental: %w", err)
		}

		if bookExists {
			_, err = tx.Exec(ctx,
				`UPDATE books SET num = num + 1, updated_at = NOW() WHERE isbn = $1`,
				isbn,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to increment copy count: %w", err)
			}
		}

		err = tx.QueryRow(ctx,
			`UPDATE rentals
			 SET return_date = $4::date
			 WHERE student_id = $1 AND isbn = $2 AND rent_date = $3
			 RETURNING return_date`,
			rental.StudentID, rental.ISBN, rental.RentDate, returnDate,
		).Scan(&rental.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("failed to close rental: %w", err)
		}

		return &rental, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateBook(ctx, isbn)
	return rental, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Rental, error) {
	query := `
		SELECT student_id, isbn, rent_date, return_date
		FROM rentals
		WHERE return_date IS NULL
		ORDER BY rent_date, student_id, isbn
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rentals: %w", err)
	}
	defer rows.Close()

	return scanRentals(rows)
}

func (r *postgresRepository) ListByStudent(ctx context.Context, studentID string) ([]model.Rental, error) {
	var studentExists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`,
		studentID,
	).Scan(&studentExists)
	if err != nil {
		return nil, fmt.Errorf("failed to check student: %w", err)
	}
	if !studentExists {
		return nil, rosterModel.ErrStudentNotFound
	}

	query := `
		SELECT student_id, isbn, rent_date, return_date
		FROM rentals
		WHERE student_id = $1
		ORDER BY rent_date, isbn
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student rentals: %w", err)
	}
	defer rows.Close()

	return scanRentals(rows)
}

func scanRentals(rows pgx.Rows) ([]model.Rental, error) {
	rentals := make([]model.Rental, 0)
	for rows.Next() {
		var rental model.Rental
		if err := rows.Scan(&rental.StudentID, &rental.ISBN, &rental.RentDate, &rental.ReturnDate); err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return rentals, nil
}

func (r *postgresRepository) invalidateBook(ctx context.Context, isbn string) {
	if err := r.cache.Delete(ctx, catalogModel.BookCacheKey(isbn), catalogModel.AllBooksCacheKey); err != nil {
		log.Warn().Err(err).Str("isbn", isbn).Msg("book cache invalidation failed")
	}
}
