package auth

type (
	User struct {
		ID           int64  `json:"id"`
		Username     string `json:"username"`
		PasswordHash string `json:"-"` // Never serialize password hash
		IsActive     bool   `json:"is_active"`
	}

	RegisterRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)
