package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yogastudio/yoga-backend/internal/model"
	"github.com/yogastudio/yoga-backend/internal/response"
	"github.com/yogastudio/yoga-backend/internal/service"
	"github.com/yogastudio/yoga-backend/internal/validator"
)

// AuthHandler handles login and registration.
type AuthHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Login godoc
// POST /api/auth/login
// Verifies credentials and returns a bearer token with the account summary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Bad credentials")
			return
		}
		h.log.Error().Err(err).Msg("Login failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

// Register godoc
// POST /api/auth/register
// Creates a new non-admin account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Message(c, http.StatusBadRequest, "Error: Email is already taken!")
			return
		}
		h.log.Error().Err(err).Msg("Registration failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Message(c, http.StatusOK, "User registered successfully!")
}
