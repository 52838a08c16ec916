package auth

import (
	"context"
	"net/http"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/pkg/utils"
)

type ContextKey string

const UserKey ContextKey = "user"

// UserDirectory resolves the X-User-ID header against the user collection.
type UserDirectory interface {
	FindByID(id string) (*domain.User, bool)
}

// UserFromContext returns the user attached by SessionMiddleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

// SessionMiddleware requires a valid X-User-ID header. There are no session
// tokens: the client sends the id it received from login or register.
func SessionMiddleware(users UserDirectory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-User-ID")
			if id == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			user, ok := users.FindByID(id)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware additionally requires the session user to be the configured
// admin account. Runs inside SessionMiddleware.
func AdminMiddleware(adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user.Email != adminEmail {
				utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
