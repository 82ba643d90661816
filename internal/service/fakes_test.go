package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yogastudio/yoga-backend/internal/model"
)

// In-memory stores standing in for the pgx repositories. Missing rows
// surface as pgx.ErrNoRows, matching the production contract.

type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUserStore) add(u *model.User) *model.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	} else if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

type fakeSessionStore struct {
	sessions map[int64]*model.Session
	nextID   int64
	updates  int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[int64]*model.Session), nextID: 1}
}

func (f *fakeSessionStore) add(s *model.Session) *model.Session {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	if s.Users == nil {
		s.Users = []int64{}
	}
	f.sessions[s.ID] = s
	return s
}

func (f *fakeSessionStore) GetByID(_ context.Context, id int64) (*model.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *s
	cp.Users = append([]int64{}, s.Users...)
	return &cp, nil
}

func (f *fakeSessionStore) List(_ context.Context) ([]model.Session, error) {
	var out []model.Session
	for _, s := range f.sessions {
		cp := *s
		cp.Users = append([]int64{}, s.Users...)
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeSessionStore) Create(_ context.Context, s *model.Session) error {
	s.ID = f.nextID
	f.nextID++
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	cp.Users = append([]int64{}, s.Users...)
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionStore) Update(_ context.Context, s *model.Session) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.updates++
	cp := *s
	cp.Users = append([]int64{}, s.Users...)
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id int64) error {
	delete(f.sessions, id)
	return nil
}
