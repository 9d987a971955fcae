package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewBadgerUserRepository(db)

	t.Run("assigns sequential ids", func(t *testing.T) {
		first := createTestUser(t, userRepo, "one@example.com")
		second := createTestUser(t, userRepo, "two@example.com")
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("duplicate email is ErrConflict", func(t *testing.T) {
		user := createTestUser(t, userRepo, "dup@example.com")
		dup := *user
		dup.ID = 0
		assert.ErrorIs(t, userRepo.Create(&dup), ErrConflict)
	})
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewBadgerUserRepository(db)

	t.Run("resolves through the email index", func(t *testing.T) {
		user := createTestUser(t, userRepo, "find@example.com")

		stored, err := userRepo.GetByEmail("find@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
		assert.Equal(t, user.Name, stored.Name)
	})

	t.Run("unknown email is ErrNotFound", func(t *testing.T) {
		_, err := userRepo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepositoryGetByResetToken(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewBadgerUserRepository(db)

	t.Run("finds the holder of the token", func(t *testing.T) {
		user := createTestUser(t, userRepo, "reset@example.com")
		user.ResetToken = "token-abc"
		require.NoError(t, userRepo.Update(user))

		stored, err := userRepo.GetByResetToken("token-abc")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("unknown token is ErrNotFound", func(t *testing.T) {
		_, err := userRepo.GetByResetToken("no-such-token")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewBadgerUserRepository(db)

	t.Run("overwrites the document", func(t *testing.T) {
		user := createTestUser(t, userRepo, "up@example.com")
		user.Name = "Renamed"
		require.NoError(t, userRepo.Update(user))

		stored, err := userRepo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Name)
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		user := createTestUser(t, userRepo, "gone@example.com")
		user.ID = 9999
		assert.ErrorIs(t, userRepo.Update(user), ErrNotFound)
	})
}
