package domain

import "time"

type Workout struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"not null"`
	Start           time.Time  `json:"start" gorm:"not null;index"`
	DurationMinutes int        `json:"duration_minutes" gorm:"not null"`
	Exercises       []Exercise `json:"exercises" gorm:"many2many:workout_exercises;"`
	UserID          uint       `json:"user_id" gorm:"not null;index"`
	Comment         string     `json:"comment,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Duration returns the planned length of the workout.
func (w *Workout) Duration() time.Duration {
	return time.Duration(w.DurationMinutes) * time.Minute
}

// End returns start + duration.
func (w *Workout) End() time.Time {
	return w.Start.Add(w.Duration())
}

// WorkoutSummary is the read-only report projection of a completed workout.
type WorkoutSummary struct {
	WorkoutName     string    `json:"workout_name"`
	WorkoutStart    time.Time `json:"workout_start"`
	WorkoutDuration int       `json:"workout_duration"`
}

func NewWorkoutSummary(w Workout) WorkoutSummary {
	return WorkoutSummary{
		WorkoutName:     w.Name,
		WorkoutStart:    w.Start,
		WorkoutDuration: w.DurationMinutes,
	}
}

type CreateWorkoutRequest struct {
	Name            string     `json:"name"`
	Start           *time.Time `json:"start"`
	DurationMinutes int        `json:"duration_minutes"`
	ExerciseIDs     []uint     `json:"exercise_ids"`
	Comment         string     `json:"comment"`
}

// UpdateWorkoutRequest is a partial update: nil fields are left unchanged.
type UpdateWorkoutRequest struct {
	ID              *uint      `json:"id"`
	Name            *string    `json:"name,omitempty"`
	Start           *time.Time `json:"start,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	ExerciseIDs     *[]uint    `json:"exercise_ids,omitempty"`
	Comment         *string    `json:"comment,omitempty"`
}

type WorkoutRepository interface {
	Create(workout *Workout) error
	GetByID(id uint) (*Workout, error)
	ListByUserID(userID uint) ([]Workout, error)
	// Update saves scalar fields and replaces the exercise pairings.
	Update(workout *Workout) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
}

type WorkoutService interface {
	// GetWorkoutsBetween returns workouts starting strictly inside (from, to), newest first.
	// Either bound may be nil.
	GetWorkoutsBetween(from, to *time.Time, userID uint) ([]Workout, error)
	GetActiveWorkouts(userID uint) ([]Workout, error)
	ListPastWorkouts(userID uint) ([]WorkoutSummary, error)
	AddWorkout(req CreateWorkoutRequest, userID uint) (*Workout, error)
	UpdateWorkout(req UpdateWorkoutRequest, userID uint) (*Workout, error)
	DeleteWorkout(id, userID uint) error
}
