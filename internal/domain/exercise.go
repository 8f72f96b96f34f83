package domain

import "time"

type Category string

const (
	CategoryCardio   Category = "CARDIO"
	CategoryStrength Category = "STRENGTH"
	CategoryFlex     Category = "FLEX"
	CategoryBalance  Category = "BALANCE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlex, CategoryBalance:
		return true
	}
	return false
}

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "CHEST"
	MuscleBack       MuscleGroup = "BACK"
	MuscleShoulders  MuscleGroup = "SHOULDERS"
	MuscleArms       MuscleGroup = "ARMS"
	MuscleQuads      MuscleGroup = "QUADS"
	MuscleHamstrings MuscleGroup = "HAMSTRINGS"
	MuscleGlutes     MuscleGroup = "GLUTES"
	MuscleCalves     MuscleGroup = "CALVES"
	MuscleAbs        MuscleGroup = "ABS"
	MuscleObliques   MuscleGroup = "OBLIQUES"
)

func (m MuscleGroup) Valid() bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleQuads,
		MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleAbs, MuscleObliques:
		return true
	}
	return false
}

// Exercise is shared reference data attached to workouts by id.
type Exercise struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Description string      `json:"description,omitempty"`
	Category    Category    `json:"category" gorm:"type:varchar(16);not null"`
	MuscleGroup MuscleGroup `json:"muscle_group,omitempty" gorm:"type:varchar(16)"`
	Sets        int         `json:"sets" gorm:"not null"`
	Repetitions int         `json:"repetitions" gorm:"not null"`
	Weight      float64     `json:"weight"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateExerciseRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Sets        int         `json:"sets"`
	Repetitions int         `json:"repetitions"`
	Weight      float64     `json:"weight"`
}

type ExerciseRepository interface {
	Create(exercise *Exercise) error
	GetByID(id uint) (*Exercise, error)
	// GetByIDs returns the exercises found among ids, in no particular order.
	GetByIDs(ids []uint) ([]Exercise, error)
	List() ([]Exercise, error)
}

type ExerciseService interface {
	CreateExercise(req CreateExerciseRequest) (*Exercise, error)
	GetExercise(id uint) (*Exercise, error)
	ListExercises() ([]Exercise, error)
}
