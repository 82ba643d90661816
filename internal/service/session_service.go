package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yogastudio/yoga-backend/internal/model"
)

// SessionService handles session CRUD and the participation state machine.
//
// Participate/NoLongerParticipate are read-check-write against the session
// aggregate with no version check; concurrent toggles on the same session can
// lose updates. The composite primary key on the participate table still
// rejects a racing duplicate insert at the store.
type SessionService struct {
	sessions SessionStore
	users    UserStore
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions SessionStore, users UserStore) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// GetByID retrieves a session with its participant set.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	return s.loadSession(ctx, id)
}

// List retrieves all sessions.
func (s *SessionService) List(ctx context.Context) ([]model.Session, error) {
	return s.sessions.List(ctx)
}

// Create stores a new session.
func (s *SessionService) Create(ctx context.Context, session *model.Session) error {
	if session.Users == nil {
		session.Users = []int64{}
	}
	return s.sessions.Create(ctx, session)
}

// Update replaces all fields of an existing session.
func (s *SessionService) Update(ctx context.Context, session *model.Session) error {
	if session.Users == nil {
		session.Users = []int64{}
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.loadSession(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// Participate adds a user to a session's participant set. The session and
// the user must exist, and the user must not already participate; a repeat
// call fails with ErrAlreadyParticipating rather than silently no-opping.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if session.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}

	session.Users = append(session.Users, userID)
	if err := s.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// NoLongerParticipate removes a user from a session's participant set. Only
// membership is checked: a nonexistent user and a non-member fail the same
// way, with ErrNotParticipating.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if !session.HasParticipant(userID) {
		return ErrNotParticipating
	}

	kept := make([]int64, 0, len(session.Users)-1)
	for _, id := range session.Users {
		if id != userID {
			kept = append(kept, id)
		}
	}
	session.Users = kept

	if err := s.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionService) loadSession(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}
