package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"library-rental-backend/internal/domains/roster/model"
	"library-rental-backend/internal/domains/roster/repository"
)

type rosterService struct {
	repo repository.Repository
}

// NewService creates the roster service.
func NewService(repo repository.Repository) Service {
	return &rosterService{repo: repo}
}

func (s *rosterService) ListStudents(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *rosterService) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	return s.repo.GetByID(ctx, studentID)
}

func (s *rosterService) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		StudentID: req.StudentID,
		Fullname:  req.Fullname,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	log.Info().Str("student_id", student.StudentID).Msg("student registered")
	return student, nil
}
