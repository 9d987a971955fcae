package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/repositories"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *mux.Router
	db     *badger.DB
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Addr:      ":0",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	return &testServer{t: t, router: SetupRoutes(db, cfg), db: db}
}

// do sends a JSON request through the router and decodes the envelope.
func (s *testServer) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &envelope), "body: %s", rec.Body.String())
	return rec.Code, envelope
}

// register creates an account and returns a login token for it.
func (s *testServer) register(email string) string {
	s.t.Helper()
	code, _ := s.do("POST", "/api/auth/register", "", map[string]string{
		"name":     "Jane",
		"surname":  "Doe",
		"email":    email,
		"password": "hunter2secret",
	})
	require.Equal(s.t, http.StatusCreated, code)

	code, env := s.do("POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "hunter2secret",
	})
	require.Equal(s.t, http.StatusOK, code)
	token, ok := env["token"].(string)
	require.True(s.t, ok)
	return token
}

// registerAdmin creates an account and grants it the admin role directly
// through the repository, the same path the promote command takes.
func (s *testServer) registerAdmin(email string) string {
	s.t.Helper()
	s.register(email)

	userRepo := repositories.NewBadgerUserRepository(s.db)
	user, err := userRepo.GetByEmail(email)
	require.NoError(s.t, err)
	user.Role = models.RoleAdmin
	require.NoError(s.t, userRepo.Update(user))

	// Re-login so the token carries the new role.
	code, env := s.do("POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "hunter2secret",
	})
	require.Equal(s.t, http.StatusOK, code)
	return env["token"].(string)
}

// createBlog creates a blog and returns its id.
func (s *testServer) createBlog(token, title, status string) int {
	s.t.Helper()
	code, env := s.do("POST", "/api/blogs", token, map[string]string{
		"title":   title,
		"content": "Some content",
		"status":  status,
	})
	require.Equal(s.t, http.StatusCreated, code)
	blog := env["blog"].(map[string]interface{})
	return int(blog["id"].(float64))
}

func TestAuthEndpoints(t *testing.T) {
	s := setupTestServer(t)

	t.Run("register returns the public user shape", func(t *testing.T) {
		code, env := s.do("POST", "/api/auth/register", "", map[string]string{
			"name":     "Jane",
			"surname":  "Doe",
			"email":    "jane@example.com",
			"password": "hunter2secret",
		})
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, true, env["success"])

		user := env["user"].(map[string]interface{})
		assert.Equal(t, "jane@example.com", user["email"])
		assert.Equal(t, models.RoleUser, user["role"])
		assert.NotContains(t, user, "passwordHash")
	})

	t.Run("duplicate email answers 400", func(t *testing.T) {
		code, env := s.do("POST", "/api/auth/register", "", map[string]string{
			"name":     "John",
			"surname":  "Doe",
			"email":    "jane@example.com",
			"password": "another-one",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, env["success"])
	})

	t.Run("wrong password answers 400", func(t *testing.T) {
		code, _ := s.do("POST", "/api/auth/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("password reset round trip", func(t *testing.T) {
		code, env := s.do("POST", "/api/auth/forgot-password", "", map[string]string{
			"email": "jane@example.com",
		})
		require.Equal(t, http.StatusOK, code)
		resetToken := env["resetToken"].(string)
		require.NotEmpty(t, resetToken)

		code, _ = s.do("POST", "/api/auth/reset-password", "", map[string]string{
			"token":    resetToken,
			"password": "brand-new-secret",
		})
		require.Equal(t, http.StatusOK, code)

		code, _ = s.do("POST", "/api/auth/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": "brand-new-secret",
		})
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestBlogLifecycle(t *testing.T) {
	s := setupTestServer(t)
	token := s.register("author@example.com")

	t.Run("anonymous cannot create", func(t *testing.T) {
		code, _ := s.do("POST", "/api/blogs", "", map[string]string{
			"title":   "Nope",
			"content": "Nope",
		})
		assert.Equal(t, http.StatusForbidden, code)
	})

	id := s.createBlog(token, "My Draft", "")

	t.Run("new blog defaults to draft", func(t *testing.T) {
		code, env := s.do("GET", fmt.Sprintf("/api/blogs/%d", id), token, nil)
		require.Equal(t, http.StatusOK, code)
		blog := env["blog"].(map[string]interface{})
		assert.Equal(t, models.StatusDraft, blog["status"])
	})

	t.Run("draft is hidden from anonymous and absent from the public list", func(t *testing.T) {
		code, _ := s.do("GET", fmt.Sprintf("/api/blogs/%d", id), "", nil)
		assert.Equal(t, http.StatusForbidden, code)

		code, env := s.do("GET", "/api/blogs", "", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, env["blogs"])
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		other := s.register("other@example.com")
		code, _ := s.do("PUT", fmt.Sprintf("/api/blogs/%d", id), other, map[string]string{
			"title": "hijacked",
		})
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("publishing via partial update makes it public", func(t *testing.T) {
		code, env := s.do("PUT", fmt.Sprintf("/api/blogs/%d", id), token, map[string]string{
			"status": models.StatusPublish,
		})
		require.Equal(t, http.StatusOK, code)
		blog := env["blog"].(map[string]interface{})
		assert.Equal(t, models.StatusPublish, blog["status"])
		// Untouched fields keep their values.
		assert.Equal(t, "My Draft", blog["title"])

		code, env = s.do("GET", fmt.Sprintf("/api/blogs/%d", id), "", nil)
		require.Equal(t, http.StatusOK, code)
		blog = env["blog"].(map[string]interface{})
		author := blog["author"].(map[string]interface{})
		assert.Equal(t, "Jane", author["name"])
		assert.Equal(t, "Doe", author["surname"])
	})

	t.Run("mine lists drafts and published alike", func(t *testing.T) {
		s.createBlog(token, "Second Draft", "")

		code, env := s.do("GET", "/api/blogs/mine", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, env["blogs"], 2)
	})

	t.Run("owner deletes own blog", func(t *testing.T) {
		code, _ := s.do("DELETE", fmt.Sprintf("/api/blogs/%d", id), token, nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = s.do("GET", fmt.Sprintf("/api/blogs/%d", id), token, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("missing blog answers 404", func(t *testing.T) {
		code, env := s.do("GET", "/api/blogs/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, false, env["success"])
	})
}

func TestLikesAndComments(t *testing.T) {
	s := setupTestServer(t)
	author := s.register("author@example.com")
	reader := s.register("reader@example.com")

	published := s.createBlog(author, "Published", models.StatusPublish)
	draft := s.createBlog(author, "Draft", "")

	t.Run("like toggles on and off", func(t *testing.T) {
		code, env := s.do("POST", fmt.Sprintf("/api/blogs/%d/like", published), reader, nil)
		require.Equal(t, http.StatusOK, code)
		blog := env["blog"].(map[string]interface{})
		assert.Len(t, blog["likes"], 1)

		code, env = s.do("POST", fmt.Sprintf("/api/blogs/%d/like", published), reader, nil)
		require.Equal(t, http.StatusOK, code)
		blog = env["blog"].(map[string]interface{})
		assert.Empty(t, blog["likes"])
	})

	t.Run("draft cannot be liked, even by its owner", func(t *testing.T) {
		code, _ := s.do("POST", fmt.Sprintf("/api/blogs/%d/like", draft), author, nil)
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("comment and reply build a tree", func(t *testing.T) {
		code, env := s.do("POST", fmt.Sprintf("/api/blogs/%d/comments", published), reader, map[string]string{
			"text": "first!",
		})
		require.Equal(t, http.StatusCreated, code)
		comments := env["comments"].([]interface{})
		require.Len(t, comments, 1)
		rootID := comments[0].(map[string]interface{})["id"].(string)

		code, _ = s.do("POST", fmt.Sprintf("/api/blogs/%d/comments", published), author, map[string]string{
			"text":     "thanks",
			"parentId": rootID,
		})
		require.Equal(t, http.StatusCreated, code)

		code, env = s.do("GET", fmt.Sprintf("/api/blogs/%d/comments", published), "", nil)
		require.Equal(t, http.StatusOK, code)
		tree := env["comments"].([]interface{})
		require.Len(t, tree, 1)
		root := tree[0].(map[string]interface{})
		assert.Equal(t, rootID, root["id"])
		replies := root["replies"].([]interface{})
		require.Len(t, replies, 1)
		reply := replies[0].(map[string]interface{})
		assert.Equal(t, "thanks", reply["text"])
	})

	t.Run("empty comment text answers 400", func(t *testing.T) {
		code, _ := s.do("POST", fmt.Sprintf("/api/blogs/%d/comments", published), reader, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("draft cannot be commented", func(t *testing.T) {
		code, _ := s.do("POST", fmt.Sprintf("/api/blogs/%d/comments", draft), author, map[string]string{
			"text": "hi",
		})
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	s := setupTestServer(t)
	author := s.register("author@example.com")
	admin := s.registerAdmin("admin@example.com")

	draft := s.createBlog(author, "Draft", "")
	published := s.createBlog(author, "Published", models.StatusPublish)

	t.Run("admin listing includes drafts", func(t *testing.T) {
		code, env := s.do("GET", "/api/blogs/admin", admin, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, env["blogs"], 2)
	})

	t.Run("plain user is rejected from the admin listing", func(t *testing.T) {
		code, _ := s.do("GET", "/api/blogs/admin", author, nil)
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("admin sees and edits any draft", func(t *testing.T) {
		code, _ := s.do("GET", fmt.Sprintf("/api/blogs/%d", draft), admin, nil)
		assert.Equal(t, http.StatusOK, code)

		code, _ = s.do("PUT", fmt.Sprintf("/api/blogs/%d", draft), admin, map[string]string{
			"title": "moderated",
		})
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("only admins delete comments", func(t *testing.T) {
		code, env := s.do("POST", fmt.Sprintf("/api/blogs/%d/comments", published), author, map[string]string{
			"text": "to be removed",
		})
		require.Equal(t, http.StatusCreated, code)
		comments := env["comments"].([]interface{})
		commentID := comments[0].(map[string]interface{})["id"].(string)

		code, _ = s.do("DELETE", fmt.Sprintf("/api/blogs/%d/comments/%s", published, commentID), author, nil)
		assert.Equal(t, http.StatusForbidden, code)

		code, env = s.do("DELETE", fmt.Sprintf("/api/blogs/%d/comments/%s", published, commentID), admin, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, env["comments"])
	})
}
