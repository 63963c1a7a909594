package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andrasnagy-data/taskboard/internal/components/auth"
	"andrasnagy-data/taskboard/internal/shared/config"
)

type fakeUserService struct {
	user *auth.User
	err  error
}

func (f *fakeUserService) Register(context.Context, string, string) (*auth.User, error) {
	return nil, nil
}

func (f *fakeUserService) Login(context.Context, string, string) (string, error) {
	return "", nil
}

func (f *fakeUserService) FindByUsername(context.Context, string) (*auth.User, error) {
	return f.user, f.err
}

func newTokenManager(secret string, ttl time.Duration) *auth.TokenManager {
	return auth.NewTokenManager(&config.Config{JWTSecret: secret, JWTTTL: ttl})
}

// echoUser writes the acting username resolved by the middleware.
func echoUser(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		require.NotNil(t, user)
		_, _ = w.Write([]byte(user.Username))
	})
}

func TestAuthMiddleware_Authorized(t *testing.T) {
	t.Parallel()

	tm := newTokenManager("secret", time.Hour)
	svc := &fakeUserService{user: &auth.User{ID: 1, Username: "alice", IsActive: true}}

	token, err := tm.Issue("alice")
	require.NoError(t, err)

	handler := NewAuthMiddleware(tm, svc)(echoUser(t))

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestAuthMiddleware_RejectionsAreUniform(t *testing.T) {
	t.Parallel()

	tm := newTokenManager("secret", time.Hour)
	expiredTM := newTokenManager("secret", -time.Minute)

	validToken, err := tm.Issue("alice")
	require.NoError(t, err)
	expiredToken, err := expiredTM.Issue("alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		svc    *fakeUserService
	}{
		{"no header", "", &fakeUserService{}},
		{"not bearer", "Basic abc123", &fakeUserService{}},
		{"malformed token", "Bearer not.a.jwt", &fakeUserService{}},
		{"expired token", "Bearer " + expiredToken, &fakeUserService{}},
		{"user missing", "Bearer " + validToken, &fakeUserService{err: auth.ErrUserNotFound}},
		{"user inactive", "Bearer " + validToken, &fakeUserService{user: &auth.User{ID: 1, Username: "alice", IsActive: false}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("protected handler must not be reached")
			})
			handler := NewAuthMiddleware(tm, tc.svc)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Every failure path must be externally indistinguishable.
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"detail":"No se pudo validar el token"}`, rec.Body.String())
		})
	}
}

func TestGetUser_MissingFromContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GetUser(context.Background()))
}
