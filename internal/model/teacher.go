package model

import "time"

// Teacher represents a class instructor. Sessions reference teachers by id;
// a teacher never embeds its sessions.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
