package services

import (
	"time"

	"inkwell/app/models"
)

// AuthorRef is the populated author reference embedded in blog and comment
// views: name and surname always, role only where the operation asks for it.
type AuthorRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role,omitempty"`
}

// BlogView is a blog with its author reference populated.
type BlogView struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Status    string        `json:"status"`
	Author    AuthorRef     `json:"author"`
	Likes     []int         `json:"likes"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CommentView is a comment with its author reference populated.
type CommentView struct {
	ID        string    `json:"id"`
	User      AuthorRef `json:"user"`
	Text      string    `json:"text"`
	Parent    string    `json:"parent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentThread is a populated comment with its nested replies.
type CommentThread struct {
	CommentView
	Replies []*CommentThread `json:"replies"`
}

// UserView is the public shape of a user account.
type UserView struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blogs     []int     `json:"blogs"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(user *models.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		Role:      user.Role,
		Blogs:     user.Blogs,
		CreatedAt: user.CreatedAt,
	}
}
