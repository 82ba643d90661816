package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yogastudio/yoga-backend/internal/model"
)

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&model.Principal{ID: 1}))
	assert.True(t, IsAdmin(&model.Principal{ID: 1, Admin: true}))
}

func TestIsSelf(t *testing.T) {
	assert.False(t, IsSelf(nil, 1))
	assert.False(t, IsSelf(&model.Principal{ID: 2}, 1))
	assert.True(t, IsSelf(&model.Principal{ID: 1}, 1))
}

func TestCanDeleteUser(t *testing.T) {
	owner := &model.Principal{ID: 3}
	admin := &model.Principal{ID: 1, Admin: true}

	assert.True(t, CanDeleteUser(owner, 3))
	assert.False(t, CanDeleteUser(owner, 4))
	assert.False(t, CanDeleteUser(nil, 3))

	// Deletion is self-service only: the admin flag grants no override.
	assert.False(t, CanDeleteUser(admin, 3))
	assert.True(t, CanDeleteUser(admin, 1))
}
