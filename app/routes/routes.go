package routes

import (
	"log"
	"net/http"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers onto a router.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	blogRepo := repositories.NewBadgerBlogRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	blogService := services.NewBlogService(blogRepo, userRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	blogController := controllers.NewBlogController(blogService)
	authController := controllers.NewAuthController(authService)

	r := mux.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.ContentTypeJSON)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Authenticate(authService))

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authController.Register).Methods("POST")
	auth.HandleFunc("/login", authController.Login).Methods("POST")
	auth.HandleFunc("/forgot-password", authController.ForgotPassword).Methods("POST")
	auth.HandleFunc("/reset-password", authController.ResetPassword).Methods("POST")

	blogs := api.PathPrefix("/blogs").Subrouter()
	blogs.HandleFunc("", blogController.Index).Methods("GET")
	blogs.Handle("", middleware.RequireUser(http.HandlerFunc(blogController.Create))).Methods("POST")

	// Fixed paths register before the {id} pattern so "admin" and "mine"
	// never parse as blog ids.
	blogs.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(blogController.AdminIndex))).Methods("GET")
	blogs.Handle("/mine", middleware.RequireUser(http.HandlerFunc(blogController.Mine))).Methods("GET")

	blogs.HandleFunc("/{id:[0-9]+}", blogController.Show).Methods("GET")
	blogs.Handle("/{id:[0-9]+}", middleware.RequireUser(http.HandlerFunc(blogController.Update))).Methods("PUT")
	blogs.Handle("/{id:[0-9]+}", middleware.RequireUser(http.HandlerFunc(blogController.Delete))).Methods("DELETE")
	blogs.Handle("/{id:[0-9]+}/like", middleware.RequireUser(http.HandlerFunc(blogController.Like))).Methods("POST")
	blogs.HandleFunc("/{id:[0-9]+}/comments", blogController.Comments).Methods("GET")
	blogs.Handle("/{id:[0-9]+}/comments", middleware.RequireUser(http.HandlerFunc(blogController.AddComment))).Methods("POST")
	blogs.Handle("/{blogId:[0-9]+}/comments/{commentId}", middleware.RequireAdmin(http.HandlerFunc(blogController.DeleteComment))).Methods("DELETE")

	return r
}

// StartServer starts the HTTP server on the configured address.
func StartServer(db *badger.DB, cfg *config.Config) error {
	router := SetupRoutes(db, cfg)
	log.Printf("Server starting on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, router)
}
