package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-rental-backend/internal/domains/roster/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the PostgreSQL roster repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Student, error) {
	query := `
		SELECT student_id, fullname, created_at, updated_at
		FROM students
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var student model.Student
		if err := rows.Scan(&student.StudentID, &student.Fullname, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return students, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, studentID string) (*model.Student, error) {
	query := `
		SELECT student_id, fullname, created_at, updated_at
		FROM students
		WHERE student_id = $1
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, studentID).Scan(
		&student.StudentID, &student.Fullname, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}

func (r *postgresRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (student_id, fullname, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, student.StudentID, student.Fullname).
		Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrStudentAlreadyExists
		}
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}
