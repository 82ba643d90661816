package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yogastudio/yoga-backend/internal/model"
)

// SessionRepository handles session data access. The participant set is part
// of the session aggregate: reads load it eagerly and writes rewrite it
// together with the session row, inside one transaction.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// GetByID retrieves a session and its participant ids.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	s := &model.Session{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, date, description, teacher_id, created_at, updated_at
		 FROM sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.Users, err = r.participantIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all sessions with their participant ids.
func (r *SessionRepository) List(ctx context.Context) ([]model.Session, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, date, description, teacher_id, created_at, updated_at
		 FROM sessions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	index := make(map[int64]int)
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Users = []int64{}
		index[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := r.pool.Query(ctx,
		`SELECT session_id, user_id FROM participate ORDER BY session_id, user_id`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var sessionID, userID int64
		if err := prows.Scan(&sessionID, &userID); err != nil {
			return nil, err
		}
		if i, ok := index[sessionID]; ok {
			sessions[i].Users = append(sessions[i].Users, userID)
		}
	}
	return sessions, prows.Err()
}

// Create inserts a new session and its participant rows.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO sessions (name, date, description, teacher_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Date, s.Description, s.TeacherID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertParticipants(ctx, tx, s.ID, s.Users); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update replaces the session row and rewrites its participant set.
// No version check guards concurrent writers; last write wins.
func (r *SessionRepository) Update(ctx context.Context, s *model.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE sessions
		 SET name = $1, date = $2, description = $3, teacher_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING updated_at`,
		s.Name, s.Date, s.Description, s.TeacherID, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM participate WHERE session_id = $1`, s.ID); err != nil {
		return err
	}
	if err := insertParticipants(ctx, tx, s.ID, s.Users); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes a session by its ID. Participant rows cascade.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *SessionRepository) participantIDs(ctx context.Context, sessionID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM participate WHERE session_id = $1 ORDER BY user_id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertParticipants(ctx context.Context, tx pgx.Tx, sessionID int64, userIDs []int64) error {
	for _, userID := range userIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO participate (user_id, session_id) VALUES ($1, $2)`,
			userID, sessionID,
		); err != nil {
			return err
		}
	}
	return nil
}
