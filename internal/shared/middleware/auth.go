package middleware

import (
	"context"
	"net/http"
	"strings"

	"andrasnagy-data/taskboard/internal/components/auth"
	"andrasnagy-data/taskboard/internal/shared/respond"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const userKey contextKey = "user"

// GetUser extracts the acting user from the request context
func GetUser(ctx context.Context) *auth.User {
	user, _ := ctx.Value(userKey).(*auth.User)
	return user
}

// NewAuthMiddleware creates authentication middleware that validates bearer
// tokens and protects routes from unauthorized access. A missing header, an
// invalid or expired token, an unknown subject and a deactivated account all
// produce the same 401 response; on success the resolved user is added to
// the request context for downstream handlers.
func NewAuthMiddleware(tokens *auth.TokenManager, service auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				reject(w)
				return
			}

			username, err := tokens.Verify(token)
			if err != nil {
				reject(w)
				return
			}

			user, err := service.FindByUsername(r.Context(), username)
			if err != nil || !user.IsActive {
				reject(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func reject(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respond.Detail(w, http.StatusUnauthorized, "No se pudo validar el token")
}
