package models

import (
	"errors"
	"time"
)

// Validate checks if the blog meets all validation requirements
func (b *Blog) Validate() error {
	if err := validate.Struct(b); err != nil {
		return err
	}

	if b.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (b *Blog) BeforeCreate() {
	if b.Status == "" {
		b.Status = StatusDraft
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}

// IsPublished reports whether the blog is publicly visible.
func (b *Blog) IsPublished() bool {
	return b.Status == StatusPublish
}

// HasLiked reports whether the given user id is in the like set.
func (b *Blog) HasLiked(userID int) bool {
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds the user to the like set, or removes it if already present.
// The like set never holds the same user twice. Returns true when the call
// resulted in a like, false when it resulted in an unlike.
func (b *Blog) ToggleLike(userID int) bool {
	for i, id := range b.Likes {
		if id == userID {
			b.Likes = append(b.Likes[:i], b.Likes[i+1:]...)
			return false
		}
	}
	b.Likes = append(b.Likes, userID)
	return true
}

// AddComment appends a comment to the blog, preserving insertion order
func (b *Blog) AddComment(comment Comment) error {
	if comment.ID == "" {
		return errors.New("comment id cannot be empty")
	}
	b.Comments = append(b.Comments, comment)
	return nil
}

// FindComment returns the comment with the given id, if present.
func (b *Blog) FindComment(commentID string) (*Comment, bool) {
	for i := range b.Comments {
		if b.Comments[i].ID == commentID {
			return &b.Comments[i], true
		}
	}
	return nil, false
}

// RemoveComment removes exactly the named comment from the blog. Replies to
// the removed comment are left in place; the tree builder promotes them to
// roots on the next read.
func (b *Blog) RemoveComment(commentID string) error {
	for i, comment := range b.Comments {
		if comment.ID == commentID {
			b.Comments = append(b.Comments[:i], b.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}
