package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AddBlog appends a blog id to the user's back-reference list. Adding an id
// that is already present is a no-op.
func (u *User) AddBlog(blogID int) {
	for _, id := range u.Blogs {
		if id == blogID {
			return
		}
	}
	u.Blogs = append(u.Blogs, blogID)
}

// RemoveBlog removes a blog id from the user's back-reference list.
func (u *User) RemoveBlog(blogID int) {
	for i, id := range u.Blogs {
		if id == blogID {
			u.Blogs = append(u.Blogs[:i], u.Blogs[i+1:]...)
			return
		}
	}
}
