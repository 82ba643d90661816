package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yogastudio/yoga-backend/internal/model"
	"github.com/yogastudio/yoga-backend/internal/response"
	"github.com/yogastudio/yoga-backend/internal/service"
	"github.com/yogastudio/yoga-backend/internal/validator"
)

// SessionHandler handles class session CRUD and participation toggles.
type SessionHandler struct {
	sessionService *service.SessionService
	log            zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, log: log}
}

// List godoc
// GET /api/session
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List sessions failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if sessions == nil {
		sessions = []model.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetByID godoc
// GET /api/session/:id
func (h *SessionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Get session failed")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Create godoc
// POST /api/session
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.SessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	session := sessionFromRequest(&req)
	if err := h.sessionService.Create(c.Request.Context(), session); err != nil {
		h.fail(c, err, "Create session failed")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Update godoc
// PUT /api/session/:id
// Full replacement of the session's fields, participant list included.
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req model.SessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	session := sessionFromRequest(&req)
	session.ID = id
	if err := h.sessionService.Update(c.Request.Context(), session); err != nil {
		h.fail(c, err, "Update session failed")
		return
	}

	updated, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Reload session failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// DELETE /api/session/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Delete session failed")
		return
	}
	c.Status(http.StatusOK)
}

// Participate godoc
// POST /api/session/:id/participate/:userId
func (h *SessionHandler) Participate(c *gin.Context) {
	sessionID, userID, ok := h.participationIDs(c)
	if !ok {
		return
	}

	if err := h.sessionService.Participate(c.Request.Context(), sessionID, userID); err != nil {
		h.fail(c, err, "Participate failed")
		return
	}
	c.Status(http.StatusOK)
}

// NoLongerParticipate godoc
// DELETE /api/session/:id/participate/:userId
func (h *SessionHandler) NoLongerParticipate(c *gin.Context) {
	sessionID, userID, ok := h.participationIDs(c)
	if !ok {
		return
	}

	if err := h.sessionService.NoLongerParticipate(c.Request.Context(), sessionID, userID); err != nil {
		h.fail(c, err, "Cancel participation failed")
		return
	}
	c.Status(http.StatusOK)
}

func (h *SessionHandler) participationIDs(c *gin.Context) (sessionID, userID int64, ok bool) {
	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return 0, 0, false
	}
	return sessionID, userID, true
}

func (h *SessionHandler) fail(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Message(c, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrAlreadyParticipating):
		response.Message(c, http.StatusBadRequest, "Already participating")
	case errors.Is(err, service.ErrNotParticipating):
		response.Message(c, http.StatusBadRequest, "Not participating")
	default:
		h.log.Error().Err(err).Msg(logMsg)
		response.Message(c, http.StatusInternalServerError, "Internal server error")
	}
}

func sessionFromRequest(req *model.SessionRequest) *model.Session {
	users := req.Users
	if users == nil {
		users = []int64{}
	}
	return &model.Session{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		Users:       users,
	}
}
