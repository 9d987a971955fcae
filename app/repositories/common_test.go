package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory Badger instance for one test.
func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser stores a fresh user and returns it with its assigned id.
func createTestUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:      "Jane",
		Surname:   "Doe",
		Email:     email,
		Role:      models.RoleUser,
		Blogs:     []int{},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(user))
	return user
}

func testBlog(authorID int) *models.Blog {
	return &models.Blog{
		Title:     "Test Blog",
		Content:   "Test content",
		Status:    models.StatusDraft,
		AuthorID:  authorID,
		Likes:     []int{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}
}
