package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-rental-backend/internal/domains/roster/model"
)

type fakeRepository struct {
	students map[string]model.Student
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{students: make(map[string]model.Student)}
}

func (f *fakeRepository) List(_ context.Context) ([]model.Student, error) {
	students := make([]model.Student, 0, len(f.students))
	for _, s := range f.students {
		students = append(students, s)
	}
	return students, nil
}

func (f *fakeRepository) GetByID(_ context.Context, studentID string) (*model.Student, error) {
	student, ok := f.students[studentID]
	if !ok {
		return nil, model.ErrStudentNotFound
	}
	return &student, nil
}

func (f *fakeRepository) Create(_ context.Context, student *model.Student) error {
	if _, ok := f.students[student.StudentID]; ok {
		return model.ErrStudentAlreadyExists
	}
	f.students[student.StudentID] = *student
	return nil
}

func TestCreateStudent(t *testing.T) {
	svc := NewService(newFakeRepository())

	student, err := svc.CreateStudent(context.Background(), model.CreateStudentRequest{
		StudentID: "S1",
		Fullname:  "Taro Yamada",
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", student.StudentID)
	assert.Equal(t, "Taro Yamada", student.Fullname)
}

func TestCreateStudentDuplicate(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, model.CreateStudentRequest{StudentID: "S1", Fullname: "A"})
	require.NoError(t, err)

	_, err = svc.CreateStudent(ctx, model.CreateStudentRequest{StudentID: "S1", Fullname: "B"})
	assert.ErrorIs(t, err, model.ErrStudentAlreadyExists)
}

func TestListStudents(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	_, err = svc.CreateStudent(ctx, model.CreateStudentRequest{StudentID: "S1", Fullname: "A"})
	require.NoError(t, err)

	students, err = svc.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}
