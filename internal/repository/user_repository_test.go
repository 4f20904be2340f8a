package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avinash949367/terminal-vacation-planner/internal/repository"
)

func TestRegisterDistinctUsernames(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	aliceID, err := users.Register(ctx, "alice", "pw1", "dog")
	require.NoError(t, err)
	bobID, err := users.Register(ctx, "bob", "pw2", "cat")
	require.NoError(t, err)
	assert.NotEqual(t, aliceID, bobID)

	gotAlice, err := users.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, aliceID, gotAlice)
	gotBob, err := users.Authenticate(ctx, "bob", "pw2")
	require.NoError(t, err)
	assert.Equal(t, bobID, gotBob)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	id, err := users.Register(ctx, "alice", "pw1", "dog")
	require.NoError(t, err)

	_, err = users.Register(ctx, "alice", "other", "bird")
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	// The original row is unchanged: the first password still works,
	// the attempted one does not.
	got, err := users.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	_, err = users.Authenticate(ctx, "alice", "other")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestAuthenticateRequiresExactMatch(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "pw1", "dog")
	require.NoError(t, err)

	// Wrong password and wrong username produce the identical error.
	_, wrongPass := users.Authenticate(ctx, "alice", "nope")
	_, wrongUser := users.Authenticate(ctx, "nobody", "pw1")
	assert.ErrorIs(t, wrongPass, repository.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongUser, repository.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, wrongUser)
}

func TestResetPassword(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	id, err := users.Register(ctx, "alice", "pw1", "dog")
	require.NoError(t, err)

	// Wrong secret: nothing changes.
	err = users.ResetPassword(ctx, "alice", "cat", "pw2")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
	_, err = users.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	// Unknown username: same error.
	err = users.ResetPassword(ctx, "nobody", "dog", "pw2")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)

	// Matching username and secret: new password in, old password out.
	require.NoError(t, users.ResetPassword(ctx, "alice", "dog", "pw2"))
	got, err := users.Authenticate(ctx, "alice", "pw2")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	_, err = users.Authenticate(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
}
