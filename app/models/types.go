package models

import "time"

// Roles a User can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Blog publication states. New blogs default to StatusDraft.
const (
	StatusDraft   = "draft"
	StatusReview  = "review"
	StatusPublish = "publish"
)

// User represents a registered account. Blogs is the back-reference list of
// blog ids this user authored; it is kept in sync with Blog.AuthorID by the
// repository layer.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Name         string    `json:"name" validate:"required,min=1,max=50"`
	Surname      string    `json:"surname" validate:"required,min=1,max=50"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"passwordHash" validate:"-"`
	Role         string    `json:"role" validate:"required,oneof=user admin"`
	Blogs        []int     `json:"blogs"`
	ResetToken   string    `json:"resetToken,omitempty" validate:"-"`
	ResetExpires time.Time `json:"resetExpires,omitempty" validate:"-"`
	CreatedAt    time.Time `json:"createdAt" validate:"-"`
}

// Blog is the post aggregate: the post itself plus its embedded like set and
// comment list. It is persisted and updated as a single document.
type Blog struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required,min=1,max=200"`
	Content   string    `json:"content" validate:"required,min=1"`
	Status    string    `json:"status" validate:"required,oneof=draft review publish"`
	AuthorID  int       `json:"authorId" validate:"required,gte=1"`
	Likes     []int     `json:"likes"`
	Comments  []Comment `json:"comments" validate:"-"`
	CreatedAt time.Time `json:"createdAt" validate:"-"`
}

// Comment belongs to exactly one Blog. Parent optionally references another
// comment id within the same blog; an empty Parent marks a root comment.
type Comment struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId" validate:"required,gte=1"`
	Text      string    `json:"text" validate:"required,min=1,max=2000"`
	Parent    string    `json:"parent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
