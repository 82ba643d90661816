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
)

// TeacherHandler exposes instructor lookup.
type TeacherHandler struct {
	teacherService *service.TeacherService
	log            zerolog.Logger
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teacherService *service.TeacherService, log zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService, log: log}
}

// List godoc
// GET /api/teacher
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teacherService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List teachers failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	c.JSON(http.StatusOK, teachers)
}

// GetByID godoc
// GET /api/teacher/:id
func (h *TeacherHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid id")
		return
	}

	teacher, err := h.teacherService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Not found")
			return
		}
		h.log.Error().Err(err).Msg("Get teacher failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, teacher)
}
