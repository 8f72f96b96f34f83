package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"seungpyo.lee/PeakTrack/internal/domain"
)

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new ExerciseRepository with the given GORM DB instance.
func NewExerciseRepository(db *gorm.DB) domain.ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(exercise *domain.Exercise) error {
	if err := r.db.Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *exerciseRepository) GetByID(id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.db.First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return &exercise, nil
}

func (r *exerciseRepository) GetByIDs(ids []uint) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if len(ids) == 0 {
		return exercises, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	return exercises, nil
}

// List returns the catalogue ordered by name.
func (r *exerciseRepository) List() ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := r.db.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}
