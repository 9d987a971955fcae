package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Index handles listing published blogs, newest first
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListPublished()
	if err != nil {
		sendError(w, err, "Blogs not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Blogs fetched successfully",
		"blogs":   blogs,
	})
}

// AdminIndex lists every blog regardless of status. The route carries the
// admin check; nothing is re-verified here.
func (bc *BlogController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListAllForAdmin()
	if err != nil {
		sendError(w, err, "Blogs not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "All blogs fetched for admin",
		"blogs":   blogs,
	})
}

// Mine lists the authenticated actor's own blogs
func (bc *BlogController) Mine(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListMine(middleware.ActorFrom(r))
	if err != nil {
		sendError(w, err, "Blogs not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Fetched my created blogs",
		"blogs":   blogs,
	})
}

// Create handles creating a new blog
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	blog, err := bc.blogService.CreateBlog(middleware.ActorFrom(r), input)
	if err != nil {
		sendError(w, err, "Author not found")
		return
	}
	sendJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

// Show handles fetching a single blog by id
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	blog, err := bc.blogService.GetByID(middleware.ActorFrom(r), id)
	if err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Blog found",
		"blog":    blog,
	})
}

// Update handles a partial blog update
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	var input services.UpdateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	blog, err := bc.blogService.UpdateBlog(middleware.ActorFrom(r), id, input)
	if err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

// Delete handles deleting a blog
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	if err := bc.blogService.DeleteBlog(middleware.ActorFrom(r), id); err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Blog deleted",
	})
}

// Like toggles the actor's like on a published blog
func (bc *BlogController) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	blog, err := bc.blogService.ToggleLike(middleware.ActorFrom(r), id)
	if err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"blog":    blog,
	})
}

// AddComment handles appending a comment to a published blog
func (bc *BlogController) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	var input struct {
		Text     string `json:"text"`
		ParentID string `json:"parentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	comments, err := bc.blogService.AddComment(middleware.ActorFrom(r), id, input.Text, input.ParentID)
	if err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusCreated, envelope{
		"success":  true,
		"message":  "Comment added successfully",
		"comments": comments,
	})
}

// Comments serves the blog's comment list as a nested reply tree
func (bc *BlogController) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	comments, err := bc.blogService.CommentTree(middleware.ActorFrom(r), id)
	if err != nil {
		sendError(w, err, "Blog not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success":  true,
		"message":  "Comments fetched successfully",
		"comments": comments,
	})
}

// DeleteComment handles removing a single comment (admin only)
func (bc *BlogController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["blogId"])
	if err != nil {
		sendInvalid(w, "Invalid blog ID")
		return
	}
	commentID := vars["commentId"]

	comments, err := bc.blogService.DeleteComment(middleware.ActorFrom(r), id, commentID)
	if err != nil {
		sendError(w, err, "Comment not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success":  true,
		"message":  "Comment deleted",
		"comments": comments,
	})
}

func blogID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendInvalid(w, "Invalid blog ID")
		return 0, false
	}
	return id, true
}
