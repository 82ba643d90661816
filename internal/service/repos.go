package service

import (
	"context"

	"github.com/yogastudio/yoga-backend/internal/model"
)

// Narrow data-access interfaces consumed by the services. The pgx
// repositories satisfy them in production; tests substitute in-memory fakes.
// Missing rows surface as pgx.ErrNoRows.

// UserStore is the user persistence surface.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

// TeacherStore is the teacher persistence surface.
type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (*model.Teacher, error)
	List(ctx context.Context) ([]model.Teacher, error)
}

// SessionStore is the session-aggregate persistence surface.
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	Create(ctx context.Context, s *model.Session) error
	Update(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id int64) error
}
