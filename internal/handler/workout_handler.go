package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/pkg/logger"
	"seungpyo.lee/PeakTrack/pkg/util"
)

// QueryTimeLayout is the format of the from/to query parameters.
const QueryTimeLayout = "2006-01-02 15:04"

type WorkoutHandler struct {
	Service  domain.WorkoutService
	location *time.Location
	log      *logger.Logger
}

// NewWorkoutHandler creates a WorkoutHandler reading query bounds in loc.
func NewWorkoutHandler(service domain.WorkoutService, loc *time.Location, log *logger.Logger) *WorkoutHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &WorkoutHandler{Service: service, location: loc, log: log.Named("workout-handler")}
}

// GetWorkouts handles GET /api/workout/all?from&to.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	verr := domain.NewValidationError("invalid query")
	from := h.parseBound(c, "from", verr)
	to := h.parseBound(c, "to", verr)
	if err := verr.OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}
	workouts, err := h.Service.GetWorkoutsBetween(from, to, userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetActiveWorkouts handles GET /api/workout/active.
func (h *WorkoutHandler) GetActiveWorkouts(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	workouts, err := h.Service.GetActiveWorkouts(userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GenerateReport handles GET /api/workout/generateReport.
func (h *WorkoutHandler) GenerateReport(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	report, err := h.Service.ListPastWorkouts(userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateWorkout handles POST /api/workout/create.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	var req domain.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, malformedBody(err))
		return
	}
	workout, err := h.Service.AddWorkout(req, userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout handles PUT /api/workout/update.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	var req domain.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, malformedBody(err))
		return
	}
	workout, err := h.Service.UpdateWorkout(req, userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /api/workout/delete/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if err := h.Service.DeleteWorkout(id, userID); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutHandler) parseBound(c *gin.Context, name string, verr *domain.ValidationError) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(QueryTimeLayout, raw, h.location)
	if err != nil {
		verr.Add(name, "must use the format yyyy-MM-dd HH:mm")
		return nil
	}
	return &t
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		verr := domain.NewValidationError("invalid id")
		verr.Add("id", "must be a positive integer")
		return 0, verr
	}
	return uint(id), nil
}
