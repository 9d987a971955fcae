package repositories

import "inkwell/app/models"

// BlogRepository defines the interface for blog data access. Each blog is
// one document; likes and comments travel with it. Create and Delete also
// maintain the author's back-reference list, atomically with the blog write.
type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id int) (*models.Blog, error)
	List() ([]*models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id int) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByResetToken(token string) (*models.User, error)
	Update(user *models.User) error
}
