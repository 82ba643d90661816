package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogastudio/yoga-backend/internal/model"
)

func seedMembershipFixture(t *testing.T) (*SessionService, *fakeSessionStore, *model.Session, *model.User) {
	t.Helper()

	users := newFakeUserStore()
	user := users.add(&model.User{Email: "user@studio.com", FirstName: "Regular", LastName: "User"})

	sessions := newFakeSessionStore()
	session := sessions.add(&model.Session{
		Name:        "Morning Flow",
		Date:        time.Now().Add(24 * time.Hour),
		Description: "Gentle start to the day",
	})

	return NewSessionService(sessions, users), sessions, session, user
}

func TestParticipate(t *testing.T) {
	svc, sessions, session, user := seedMembershipFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Participate(ctx, session.ID, user.ID))

	stored, err := sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{user.ID}, stored.Users)

	// A repeat call fails loudly, it never no-ops.
	err = svc.Participate(ctx, session.ID, user.ID)
	assert.ErrorIs(t, err, ErrAlreadyParticipating)

	stored, err = sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{user.ID}, stored.Users)
}

func TestParticipate_SessionNotFound(t *testing.T) {
	svc, _, _, user := seedMembershipFixture(t)

	err := svc.Participate(context.Background(), 999, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParticipate_UserNotFound(t *testing.T) {
	svc, _, session, _ := seedMembershipFixture(t)

	err := svc.Participate(context.Background(), session.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoLongerParticipate(t *testing.T) {
	svc, sessions, session, user := seedMembershipFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Participate(ctx, session.ID, user.ID))
	require.NoError(t, svc.NoLongerParticipate(ctx, session.ID, user.ID))

	stored, err := sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Users)

	// Second removal fails the same way as removing a non-member.
	err = svc.NoLongerParticipate(ctx, session.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotParticipating)
}

func TestNoLongerParticipate_SessionNotFound(t *testing.T) {
	svc, _, _, user := seedMembershipFixture(t)

	err := svc.NoLongerParticipate(context.Background(), 999, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoLongerParticipate_UnknownUserIndistinguishable(t *testing.T) {
	// A user id that does not exist at all and one that simply is not a
	// member both yield ErrNotParticipating: removal checks membership only.
	svc, _, session, _ := seedMembershipFixture(t)

	err := svc.NoLongerParticipate(context.Background(), session.ID, 12345)
	assert.ErrorIs(t, err, ErrNotParticipating)
}

func TestNoLongerParticipate_KeepsOtherMembers(t *testing.T) {
	users := newFakeUserStore()
	a := users.add(&model.User{Email: "a@studio.com"})
	b := users.add(&model.User{Email: "b@studio.com"})

	sessions := newFakeSessionStore()
	session := sessions.add(&model.Session{
		Name:        "Evening Stretch",
		Date:        time.Now(),
		Description: "Wind down",
		Users:       []int64{a.ID, b.ID},
	})

	svc := NewSessionService(sessions, users)
	ctx := context.Background()

	require.NoError(t, svc.NoLongerParticipate(ctx, session.ID, a.ID))

	stored, err := sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, stored.Users)
}

func TestSessionUpdate_NotFound(t *testing.T) {
	svc, _, _, _ := seedMembershipFixture(t)

	err := svc.Update(context.Background(), &model.Session{
		ID:          999,
		Name:        "Ghost",
		Date:        time.Now(),
		Description: "does not exist",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionDelete_NotFound(t *testing.T) {
	svc, _, _, _ := seedMembershipFixture(t)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
