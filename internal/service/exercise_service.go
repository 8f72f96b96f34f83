package service

import (
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/util"
	"seungpyo.lee/PeakTrack/internal/validation"
)

type exerciseService struct {
	repo domain.ExerciseRepository
}

func NewExerciseService(repo domain.ExerciseRepository) domain.ExerciseService {
	return &exerciseService{repo: repo}
}

func (s *exerciseService) CreateExercise(req domain.CreateExerciseRequest) (*domain.Exercise, error) {
	req.Name = util.SanitizeText(req.Name)
	req.Description = util.SanitizeText(req.Description)
	if err := validation.ValidateExercise(req); err != nil {
		return nil, err
	}
	exercise := &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MuscleGroup: req.MuscleGroup,
		Sets:        req.Sets,
		Repetitions: req.Repetitions,
		Weight:      req.Weight,
	}
	if err := s.repo.Create(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExercise(id uint) (*domain.Exercise, error) {
	return s.repo.GetByID(id)
}

func (s *exerciseService) ListExercises() ([]domain.Exercise, error) {
	return s.repo.List()
}
