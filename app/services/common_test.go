package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/require"
)

// mockBlogRepo is a map-backed BlogRepository for service tests.
type mockBlogRepo struct {
	blogs  map[int]*models.Blog
	nextID int
}

func newMockBlogRepo() *mockBlogRepo {
	return &mockBlogRepo{blogs: make(map[int]*models.Blog)}
}

func (m *mockBlogRepo) Create(blog *models.Blog) error {
	m.nextID++
	blog.ID = m.nextID
	stored := *blog
	m.blogs[blog.ID] = &stored
	return nil
}

func (m *mockBlogRepo) GetByID(id int) (*models.Blog, error) {
	blog, ok := m.blogs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *blog
	return &copied, nil
}

func (m *mockBlogRepo) List() ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0, len(m.blogs))
	for _, blog := range m.blogs {
		copied := *blog
		blogs = append(blogs, &copied)
	}
	return blogs, nil
}

func (m *mockBlogRepo) Update(blog *models.Blog) error {
	if _, ok := m.blogs[blog.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *blog
	m.blogs[blog.ID] = &stored
	return nil
}

func (m *mockBlogRepo) Delete(id int) error {
	if _, ok := m.blogs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

// mockUserRepo is a map-backed UserRepository for service tests.
type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrConflict
		}
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) GetByResetToken(token string) (*models.User, error) {
	for _, user := range m.users {
		if user.ResetToken != "" && user.ResetToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) Update(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

// addUser seeds the mock with a user and returns it with its assigned id.
func addUser(t *testing.T, repo *mockUserRepo, name, surname, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:      name,
		Surname:   surname,
		Email:     name + "@example.com",
		Role:      role,
		Blogs:     []int{},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(user))
	return user
}

// addBlog seeds the mock with a blog authored by the given user id.
func addBlog(t *testing.T, repo *mockBlogRepo, authorID int, status string, createdAt time.Time) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		Title:     "Test Blog",
		Content:   "Test content",
		Status:    status,
		AuthorID:  authorID,
		Likes:     []int{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(blog))
	return blog
}
