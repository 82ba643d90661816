package model

import "time"

// Session represents a bookable class. Users holds the ids of participating
// accounts; the set is duplicate-free and order-irrelevant. TeacherID is nil
// until an instructor is assigned.
//
// The teacher_id / users JSON names are the wire contract the existing
// clients expect.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	TeacherID   *int64    `json:"teacher_id"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParticipant reports whether the given user id is in the participant set.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionRequest is the payload for creating or replacing a session.
type SessionRequest struct {
	Name        string    `json:"name" binding:"required,max=50"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"required,max=2500"`
	TeacherID   *int64    `json:"teacher_id"`
	Users       []int64   `json:"users"`
}
