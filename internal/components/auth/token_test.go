package auth

import (
	"testing"
	"time"

	"andrasnagy-data/taskboard/internal/shared/config"
)

func newTokenManager(secret string, ttl time.Duration) *TokenManager {
	return NewTokenManager(&config.Config{JWTSecret: secret, JWTTTL: ttl})
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := newTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := newTokenManager("secret", -1*time.Second)

	tok, err := tm.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTokenManager("right-secret", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTokenManager("wrong-secret", time.Hour).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := newTokenManager("k", time.Hour).Verify("not.a.jwt")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	tm := newTokenManager("k", time.Hour)

	tok, err := tm.Issue("")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}
