package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"seungpyo.lee/PeakTrack/internal/domain"
)

// workoutExercise is a row of the many2many join table behind Workout.Exercises.
type workoutExercise struct {
	WorkoutID  uint `gorm:"primaryKey"`
	ExerciseID uint `gorm:"primaryKey"`
}

func (workoutExercise) TableName() string { return "workout_exercises" }

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new WorkoutRepository with the given GORM DB instance.
func NewWorkoutRepository(db *gorm.DB) domain.WorkoutRepository {
	return &workoutRepository{db: db}
}

// Create inserts the workout and its exercise pairings. Exercises themselves are never written.
func (r *workoutRepository) Create(workout *domain.Workout) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Create(workout).Error; err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}
		return insertExercisePairs(tx, workout)
	})
}

// GetByID retrieves a workout with its exercises.
func (r *workoutRepository) GetByID(id uint) (*domain.Workout, error) {
	var workout domain.Workout
	if err := r.db.Preload("Exercises").First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.WorkoutNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return &workout, nil
}

// ListByUserID returns every workout owned by the user, newest first.
func (r *workoutRepository) ListByUserID(userID uint) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.db.Preload("Exercises").
		Where("user_id = ?", userID).
		Order("start DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// Update saves the scalar fields and replaces the exercise pairings wholesale.
func (r *workoutRepository) Update(workout *domain.Workout) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(workout).
			Select("name", "start", "duration_minutes", "comment", "updated_at").
			Updates(workout)
		if result.Error != nil {
			return fmt.Errorf("failed to update workout: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &domain.WorkoutNotFoundError{ID: workout.ID}
		}
		if err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", workout.ID).Error; err != nil {
			return fmt.Errorf("failed to clear workout exercises: %w", err)
		}
		return insertExercisePairs(tx, workout)
	})
}

// Delete removes a workout and its exercise pairings.
func (r *workoutRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete workout exercises: %w", err)
		}
		result := tx.Delete(&domain.Workout{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete workout: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &domain.WorkoutNotFoundError{ID: id}
		}
		return nil
	})
}

// DeleteByUserID removes every workout owned by the user.
func (r *workoutRepository) DeleteByUserID(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWorkoutsByUser(tx, userID)
	})
}

func deleteWorkoutsByUser(tx *gorm.DB, userID uint) error {
	err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id IN (SELECT id FROM workouts WHERE user_id = ?)", userID).Error
	if err != nil {
		return fmt.Errorf("failed to delete workout exercises: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&domain.Workout{}).Error; err != nil {
		return fmt.Errorf("failed to delete workouts: %w", err)
	}
	return nil
}

func insertExercisePairs(tx *gorm.DB, workout *domain.Workout) error {
	if len(workout.Exercises) == 0 {
		return nil
	}
	pairs := make([]workoutExercise, 0, len(workout.Exercises))
	for _, e := range workout.Exercises {
		pairs = append(pairs, workoutExercise{WorkoutID: workout.ID, ExerciseID: e.ID})
	}
	if err := tx.Create(&pairs).Error; err != nil {
		return fmt.Errorf("failed to save workout exercises: %w", err)
	}
	return nil
}
