package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inkwell/app/policy"
	"inkwell/app/services"
)

type contextKey int

const actorKey contextKey = iota

// Authenticate resolves an optional bearer token into an actor stored on the
// request context. Requests without a token continue as anonymous; requests
// with a bad token are rejected, not downgraded.
func Authenticate(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			actor, err := auth.ActorFromToken(token)
			if err != nil {
				forbid(w, "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
		})
	}
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ActorFrom(r) == nil {
			forbid(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose actor is not an admin. Operations
// behind it, like the admin blog listing, perform no role check themselves.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActorFrom(r).IsAdmin() {
			forbid(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFrom returns the authenticated actor on the request, or nil for an
// anonymous visitor.
func ActorFrom(r *http.Request) *policy.Actor {
	actor, _ := r.Context().Value(actorKey).(*policy.Actor)
	return actor
}

// WithActor stores an actor on the request, for tests.
func WithActor(r *http.Request, actor *policy.Actor) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, actor))
}

func forbid(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
