package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNote_CanRead(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	friend := uuid.New()
	stranger := uuid.New()

	n := Note{OwnerID: owner, SharedWith: []uuid.UUID{friend}}

	assert.True(t, n.CanRead(owner))
	assert.True(t, n.CanRead(friend))
	assert.False(t, n.CanRead(stranger))
	assert.True(t, n.IsSharedWith(friend))
	assert.False(t, n.IsSharedWith(owner))
}

func TestUpdates_Empty(t *testing.T) {
	t.Parallel()

	title := "t"
	assert.True(t, NoteUpdate{}.Empty())
	assert.False(t, NoteUpdate{Title: &title}.Empty())
	assert.True(t, ProfileUpdate{}.Empty())
	assert.False(t, ProfileUpdate{FullName: &title}.Empty())
}

func TestUser_Profile(t *testing.T) {
	t.Parallel()

	rt := "refresh"
	u := User{ID: uuid.New(), Username: "alice", Email: "alice@x.com", FullName: "Alice", PasswordHash: "hash", RefreshToken: &rt}
	p := u.Profile()

	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "alice@x.com", p.Email)
	assert.Equal(t, "Alice", p.FullName)
}
