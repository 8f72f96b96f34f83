package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrUsernameConflict    = errors.New("username already exists")
	ErrEmailConflict       = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrWorkoutTimeConflict = errors.New("workout time conflict")
	ErrInvalidDateRange    = errors.New("beginning date cannot be after end date")
	ErrMissingStartTime    = errors.New("a workout must have a valid start date")
	ErrExerciseNotFound    = errors.New("exercise not found")
)

// ValidationError collects every field violation of a request.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

// NewValidationError creates an empty ValidationError with the given summary.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: make(map[string][]string)}
}

// Add records a violation for field.
func (e *ValidationError) Add(field, violation string) {
	e.Fields[field] = append(e.Fields[field], violation)
}

// HasViolations reports whether any violation was recorded.
func (e *ValidationError) HasViolations() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when violations were recorded, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// WorkoutNotFoundError names the workout id that is not among the caller's workouts.
type WorkoutNotFoundError struct {
	ID uint
}

func (e *WorkoutNotFoundError) Error() string {
	return fmt.Sprintf("workout with id %d does not exist", e.ID)
}

func (e *WorkoutNotFoundError) Unwrap() error {
	return ErrWorkoutNotFound
}

// WorkoutTimeConflictError captures both intervals of a scheduling conflict.
type WorkoutTimeConflictError struct {
	ExistingID     uint
	ExistingStart  time.Time
	ExistingEnd    time.Time
	CandidateID    uint
	CandidateStart time.Time
	CandidateEnd   time.Time
}

func (e *WorkoutTimeConflictError) Error() string {
	return fmt.Sprintf("timing conflict detected: workout %d (%s - %s) overlaps workout %d (%s - %s)",
		e.ExistingID, e.ExistingStart.Format(time.RFC3339), e.ExistingEnd.Format(time.RFC3339),
		e.CandidateID, e.CandidateStart.Format(time.RFC3339), e.CandidateEnd.Format(time.RFC3339))
}

func (e *WorkoutTimeConflictError) Unwrap() error {
	return ErrWorkoutTimeConflict
}
