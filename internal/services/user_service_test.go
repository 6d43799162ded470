package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreate(t *testing.T) {
	env := setupTestEnv(t)

	first, err := env.users.GetOrCreate("alice")
	require.NoError(t, err)
	second, err := env.users.GetOrCreate("  alice ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = env.users.GetOrCreate("   ")
	_, ok := IsValidation(err)
	assert.True(t, ok)
}

func TestUserService_FindByUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.user(t, "alice")

	user, err := env.users.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = env.users.FindByUsername("carol")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	env := setupTestEnv(t)
	bob := env.user(t, "bob")
	alice := env.user(t, "alice")
	env.bean(t, alice.ID, BeanInput{Name: "A"})
	env.bean(t, alice.ID, BeanInput{Name: "B"})
	env.bean(t, bob.ID, BeanInput{Name: "C"})

	users, err := env.users.ListUsers()
	require.NoError(t, err)
	assert.Equal(t, []UserOverview{
		{ID: alice.ID, Username: "alice", BeanCount: 2},
		{ID: bob.ID, Username: "bob", BeanCount: 1},
	}, users)
}
