// Package policy holds the pure authorization decision functions for blogs
// and comments. Every role/ownership check in the application goes through
// here; callers translate a false answer into a 403.
package policy

import "inkwell/app/models"

// Actor is the requester of an operation. A nil *Actor is an anonymous
// visitor.
type Actor struct {
	ID   int
	Role string
}

// IsAdmin reports whether the actor exists and holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == models.RoleAdmin
}

// isOwner reports whether the actor exists and authored the blog.
func (a *Actor) isOwner(blog *models.Blog) bool {
	return a != nil && a.ID == blog.AuthorID
}

// CanView decides read access. Published blogs are visible to everyone,
// including anonymous visitors; unpublished blogs only to their author or an
// admin.
func CanView(actor *Actor, blog *models.Blog) bool {
	if blog.IsPublished() {
		return true
	}
	return actor.isOwner(blog) || actor.IsAdmin()
}

// CanModify decides edit and delete access: author or admin. Update and
// delete share this check; there is no finer-grained permission.
func CanModify(actor *Actor, blog *models.Blog) bool {
	return actor.isOwner(blog) || actor.IsAdmin()
}

// CanLike gates liking on publication status alone. Admins get no bypass:
// an unpublished blog cannot be liked by anyone.
func CanLike(blog *models.Blog) bool {
	return blog.IsPublished()
}

// CanComment gates commenting on publication status alone, like CanLike.
func CanComment(blog *models.Blog) bool {
	return blog.IsPublished()
}

// CanDeleteComment restricts comment deletion to admins. Authorship of the
// comment is irrelevant.
func CanDeleteComment(actor *Actor) bool {
	return actor.IsAdmin()
}
