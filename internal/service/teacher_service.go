package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yogastudio/yoga-backend/internal/model"
)

// TeacherService handles instructor lookup. Teachers are reference data:
// created by migrations or operators, read by clients.
type TeacherService struct {
	teachers TeacherStore
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teachers TeacherStore) *TeacherService {
	return &TeacherService{teachers: teachers}
}

// GetByID retrieves a teacher by its ID.
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load teacher: %w", err)
	}
	return teacher, nil
}

// List retrieves all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.teachers.List(ctx)
}
