package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

type ExerciseHandler struct {
	Service domain.ExerciseService
	log     *logger.Logger
}

func NewExerciseHandler(service domain.ExerciseService, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{Service: service, log: log.Named("exercise-handler")}
}

// CreateExercise handles POST /api/exercise/create.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req domain.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, malformedBody(err))
		return
	}
	exercise, err := h.Service.CreateExercise(req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListExercises handles GET /api/exercise/all.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.Service.ListExercises()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise handles GET /api/exercise/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	exercise, err := h.Service.GetExercise(id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}
