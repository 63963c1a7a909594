package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords
	// so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers every token verification failure (bad signature,
	// malformed, missing subject, expired) for the same reason.
	ErrInvalidToken = errors.New("invalid token")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
)
