package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/pkg/jwt"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

// problem is the error body returned by every endpoint.
type problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors any    `json:"errors,omitempty"`
}

type errorMapping struct {
	target error
	status int
	title  string
}

var errorMappings = []errorMapping{
	{domain.ErrValidation, http.StatusBadRequest, "Validation Failed"},
	{domain.ErrMissingStartTime, http.StatusBadRequest, "Missing Start Time"},
	{domain.ErrInvalidDateRange, http.StatusBadRequest, "Invalid Date Range"},
	{domain.ErrWorkoutTimeConflict, http.StatusBadRequest, "Workout Time Conflict"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid Credentials"},
	{domain.ErrUnauthorized, http.StatusForbidden, "Access Denied"},
	{jwt.ErrTokenExpired, http.StatusForbidden, "Token Expired"},
	{jwt.ErrTokenRevoked, http.StatusForbidden, "Token Revoked"},
	{jwt.ErrTokenInvalid, http.StatusForbidden, "Token Invalid"},
	{domain.ErrWorkoutNotFound, http.StatusNotFound, "Workout Not Found"},
	{domain.ErrExerciseNotFound, http.StatusNotFound, "Exercise Not Found"},
	{domain.ErrUserNotFound, http.StatusNotFound, "User Not Found"},
	{domain.ErrUsernameConflict, http.StatusConflict, "Username Conflict"},
	{domain.ErrEmailConflict, http.StatusConflict, "Email Conflict"},
}

// newProblem translates err into its HTTP status and body.
func newProblem(err error) problem {
	p := problem{
		Status: http.StatusInternalServerError,
		Title:  "Internal Server Error",
		Detail: err.Error(),
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			p.Status = m.status
			p.Title = m.title
			break
		}
	}

	var verr *domain.ValidationError
	var conflict *domain.WorkoutTimeConflictError
	switch {
	case errors.As(err, &verr) && verr.HasViolations():
		p.Errors = verr.Fields
	case errors.As(err, &conflict):
		p.Errors = gin.H{
			"existing_workout_id":     conflict.ExistingID,
			"existing_workout_start":  conflict.ExistingStart.Format(time.RFC3339),
			"existing_workout_end":    conflict.ExistingEnd.Format(time.RFC3339),
			"candidate_workout_id":    conflict.CandidateID,
			"candidate_workout_start": conflict.CandidateStart.Format(time.RFC3339),
			"candidate_workout_end":   conflict.CandidateEnd.Format(time.RFC3339),
		}
	}
	return p
}

func writeError(c *gin.Context, log *logger.Logger, err error) {
	p := newProblem(err)
	if p.Status == http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(p.Status, p)
}

// malformedBody wraps a JSON binding failure so it is reported as a 400.
func malformedBody(err error) error {
	return domain.NewValidationError("malformed request body: " + err.Error())
}
