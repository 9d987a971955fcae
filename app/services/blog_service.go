package services

import (
	"sort"

	"inkwell/app/models"
	"inkwell/app/policy"
	"inkwell/app/repositories"

	"github.com/google/uuid"
)

// BlogService handles business logic for blogs: creation, listing,
// visibility-gated reads, partial updates, deletion, like toggling and
// comments. Every access decision goes through the policy package; this
// service never re-derives role checks inline.
type BlogService struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

// CreateBlogInput carries the fields of a blog creation request.
type CreateBlogInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// UpdateBlogInput carries a partial update: nil fields are left unchanged.
type UpdateBlogInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// CreateBlog creates a blog authored by the actor. Status defaults to draft
// when omitted. The author's back-reference list is updated by the
// repository in the same transaction as the blog write.
func (s *BlogService) CreateBlog(actor *policy.Actor, input CreateBlogInput) (*BlogView, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if input.Title == "" || input.Content == "" {
		return nil, newValidationError("title and content required")
	}

	blog := &models.Blog{
		Title:    input.Title,
		Content:  input.Content,
		Status:   input.Status,
		AuthorID: actor.ID,
		Likes:    []int{},
		Comments: []models.Comment{},
	}
	blog.BeforeCreate()
	if err := blog.Validate(); err != nil {
		return nil, newValidationError("invalid blog: " + err.Error())
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return s.blogView(blog, true), nil
}

// ListPublished returns every published blog, newest first.
func (s *BlogService) ListPublished() ([]*BlogView, error) {
	blogs, err := s.blogRepo.List()
	if err != nil {
		return nil, err
	}
	published := blogs[:0]
	for _, blog := range blogs {
		if blog.IsPublished() {
			published = append(published, blog)
		}
	}
	return s.blogViews(published, false), nil
}

// ListAllForAdmin returns every blog regardless of status, newest first. It
// performs no role check itself; the route boundary must have verified the
// caller is an admin.
func (s *BlogService) ListAllForAdmin() ([]*BlogView, error) {
	blogs, err := s.blogRepo.List()
	if err != nil {
		return nil, err
	}
	return s.blogViews(blogs, true), nil
}

// ListMine returns the actor's own blogs, newest first.
func (s *BlogService) ListMine(actor *policy.Actor) ([]*BlogView, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	blogs, err := s.blogRepo.List()
	if err != nil {
		return nil, err
	}
	mine := blogs[:0]
	for _, blog := range blogs {
		if blog.AuthorID == actor.ID {
			mine = append(mine, blog)
		}
	}
	return s.blogViews(mine, false), nil
}

// GetByID returns one blog with author and comment authors populated.
// A missing blog is NotFound; an existing blog the actor may not see is
// Forbidden, never NotFound.
func (s *BlogService) GetByID(actor *policy.Actor, id int) (*BlogView, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, blog) {
		return nil, ErrForbidden
	}
	return s.blogView(blog, true), nil
}

// UpdateBlog applies a partial update. Omitted fields keep their stored
// values; nothing ties status changes to a role, so any permitted modifier
// may publish.
func (s *BlogService) UpdateBlog(actor *policy.Actor, id int, input UpdateBlogInput) (*BlogView, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, blog) {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Status != nil {
		blog.Status = *input.Status
	}
	if err := blog.Validate(); err != nil {
		return nil, newValidationError("invalid blog: " + err.Error())
	}

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}
	return s.blogView(blog, true), nil
}

// DeleteBlog removes the blog; the repository pulls its id from the author's
// back-reference list in the same transaction.
func (s *BlogService) DeleteBlog(actor *policy.Actor, id int) error {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !policy.CanModify(actor, blog) {
		return ErrForbidden
	}
	return s.blogRepo.Delete(id)
}

// ToggleLike likes the blog on behalf of the actor, or unlikes it if the
// actor already liked it. Only published blogs can be liked, whatever the
// actor's role.
func (s *BlogService) ToggleLike(actor *policy.Actor, id int) (*BlogView, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanLike(blog) {
		return nil, ErrForbidden
	}

	blog.ToggleLike(actor.ID)
	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}
	return s.blogView(blog, false), nil
}

// AddComment appends a comment to a published blog and returns the updated,
// populated comment list. The parent id is stored as given; whether it
// resolves is the tree builder's concern at read time.
func (s *BlogService) AddComment(actor *policy.Actor, blogID int, text, parentID string) ([]CommentView, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if text == "" {
		return nil, newValidationError("comment text required")
	}

	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		return nil, err
	}
	if !policy.CanComment(blog) {
		return nil, ErrForbidden
	}

	comment := models.Comment{
		ID:     uuid.NewString(),
		UserID: actor.ID,
		Text:   text,
		Parent: parentID,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, newValidationError("invalid comment: " + err.Error())
	}

	if err := blog.AddComment(comment); err != nil {
		return nil, newValidationError(err.Error())
	}
	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}

	cache := make(map[int]*models.User)
	return s.commentViews(cache, blog.Comments), nil
}

// DeleteComment removes exactly the named comment. Admin only; replies are
// not cascaded, so children of the removed comment surface as roots on the
// next tree build.
func (s *BlogService) DeleteComment(actor *policy.Actor, blogID int, commentID string) ([]CommentView, error) {
	if !policy.CanDeleteComment(actor) {
		return nil, ErrForbidden
	}

	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		return nil, err
	}
	if err := blog.RemoveComment(commentID); err != nil {
		return nil, repositories.ErrNotFound
	}

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}

	cache := make(map[int]*models.User)
	return s.commentViews(cache, blog.Comments), nil
}

// CommentTree returns the blog's comments as a nested reply forest, gated by
// the same visibility rule as GetByID. The tree is rebuilt on every call.
func (s *BlogService) CommentTree(actor *policy.Actor, blogID int) ([]*CommentThread, error) {
	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, blog) {
		return nil, ErrForbidden
	}

	cache := make(map[int]*models.User)
	return s.commentThreads(cache, models.BuildCommentTree(blog.Comments)), nil
}

// View helpers

func (s *BlogService) blogViews(blogs []*models.Blog, withRole bool) []*BlogView {
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	views := make([]*BlogView, 0, len(blogs))
	for _, blog := range blogs {
		views = append(views, s.blogView(blog, withRole))
	}
	return views
}

func (s *BlogService) blogView(blog *models.Blog, withRole bool) *BlogView {
	cache := make(map[int]*models.User)
	likes := blog.Likes
	if likes == nil {
		likes = []int{}
	}
	return &BlogView{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Status:    blog.Status,
		Author:    s.authorRef(cache, blog.AuthorID, withRole),
		Likes:     likes,
		Comments:  s.commentViews(cache, blog.Comments),
		CreatedAt: blog.CreatedAt,
	}
}

func (s *BlogService) commentViews(cache map[int]*models.User, comments []models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, CommentView{
			ID:        comment.ID,
			User:      s.authorRef(cache, comment.UserID, false),
			Text:      comment.Text,
			Parent:    comment.Parent,
			CreatedAt: comment.CreatedAt,
		})
	}
	return views
}

func (s *BlogService) commentThreads(cache map[int]*models.User, nodes []*models.CommentNode) []*CommentThread {
	threads := make([]*CommentThread, 0, len(nodes))
	for _, node := range nodes {
		threads = append(threads, &CommentThread{
			CommentView: CommentView{
				ID:        node.ID,
				User:      s.authorRef(cache, node.UserID, false),
				Text:      node.Text,
				Parent:    node.Parent,
				CreatedAt: node.CreatedAt,
			},
			Replies: s.commentThreads(cache, node.Replies),
		})
	}
	return threads
}

// authorRef resolves a user id to a populated reference. A user that no
// longer resolves yields a bare reference with only the id set, mirroring a
// dropped populate.
func (s *BlogService) authorRef(cache map[int]*models.User, userID int, withRole bool) AuthorRef {
	user, ok := cache[userID]
	if !ok {
		loaded, err := s.userRepo.GetByID(userID)
		if err != nil {
			return AuthorRef{ID: userID}
		}
		cache[userID] = loaded
		user = loaded
	}
	ref := AuthorRef{ID: user.ID, Name: user.Name, Surname: user.Surname}
	if withRole {
		ref.Role = user.Role
	}
	return ref
}
