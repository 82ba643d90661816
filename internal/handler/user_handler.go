package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yogastudio/yoga-backend/internal/authz"
	"github.com/yogastudio/yoga-backend/internal/middleware"
	"github.com/yogastudio/yoga-backend/internal/response"
	"github.com/yogastudio/yoga-backend/internal/service"
)

// UserHandler exposes account lookup and self-service deletion.
type UserHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// GetByID godoc
// GET /api/user/:id
// Any authenticated caller may look up any account; the password hash is
// never serialized.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Not found")
			return
		}
		h.log.Error().Err(err).Msg("Get user failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// DELETE /api/user/:id
// Accounts are deleted by their owner only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Not found")
			return
		}
		h.log.Error().Err(err).Msg("Get user failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !authz.CanDeleteUser(middleware.GetPrincipal(c), user.ID) {
		response.Unauthorized(c, "You can only delete your own account")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Msg("Delete user failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Status(http.StatusOK)
}
