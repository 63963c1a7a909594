package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"andrasnagy-data/taskboard/internal/shared/respond"
)

type (
	Router struct {
		service Service
	}
)

func NewRouter(service Service) *Router {
	return &Router{service: service}
}

// HandleRegister creates a new user account. A separate login is required
// to obtain a token.
func (r *Router) HandleRegister(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respond.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Username == "" {
		respond.Detail(w, http.StatusBadRequest, "username: must not be empty")
		return
	}
	if body.Password == "" {
		respond.Detail(w, http.StatusBadRequest, "password: must not be empty")
		return
	}

	logger.Debug().Str("username", body.Username).Msg("Registration attempt")

	_, err := r.service.Register(ctx, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			logger.Warn().Str("username", body.Username).Msg("Registration failed: username taken")
			respond.Detail(w, http.StatusBadRequest, "El usuario ya existe")
			return
		}
		logger.Error().Err(err).Str("username", body.Username).Msg("Registration failed")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Str("username", body.Username).Msg("Registration successful")
	respond.JSON(w, http.StatusCreated, MessageResponse{Message: "Usuario creado exitosamente"})
}

// HandleToken exchanges form-encoded credentials for an access token.
// The request body may be urlencoded or multipart, matching the clients
// that send FormData here.
func (r *Router) HandleToken(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	username := req.FormValue("username")
	password := req.FormValue("password")

	logger.Debug().Str("username", username).Msg("Login attempt")

	token, err := r.service.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("username", username).Msg("Login failed: invalid credentials")
			respond.Detail(w, http.StatusUnauthorized, "Credenciales incorrectas")
			return
		}
		logger.Error().Err(err).Str("username", username).Msg("Login failed")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Str("username", username).Msg("Login successful")
	respond.JSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
