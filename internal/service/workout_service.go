package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/observability"
	"seungpyo.lee/PeakTrack/internal/util"
	"seungpyo.lee/PeakTrack/internal/validation"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

// workoutService implements domain.WorkoutService over the caller's workout set.
type workoutService struct {
	repo      domain.WorkoutRepository
	exercises domain.ExerciseRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(repo domain.WorkoutRepository, exercises domain.ExerciseRepository, log *logger.Logger) domain.WorkoutService {
	return &workoutService{repo: repo, exercises: exercises, log: log.Named("workout"), now: time.Now}
}

func (s *workoutService) GetWorkoutsBetween(from, to *time.Time, userID uint) ([]domain.Workout, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.ErrInvalidDateRange
	}
	workouts, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if from != nil && !w.Start.After(*from) {
			continue
		}
		if to != nil && !w.Start.Before(*to) {
			continue
		}
		result = append(result, w)
	}
	slices.SortStableFunc(result, func(a, b domain.Workout) int {
		return b.Start.Compare(a.Start)
	})
	return result, nil
}

// GetActiveWorkouts returns workouts that have not ended yet, soonest first.
func (s *workoutService) GetActiveWorkouts(userID uint) ([]domain.Workout, error) {
	workouts, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	active := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.End().After(now) {
			active = append(active, w)
		}
	}
	slices.SortStableFunc(active, func(a, b domain.Workout) int {
		return a.Start.Compare(b.Start)
	})
	return active, nil
}

// ListPastWorkouts summarises workouts that already ended, most recent first.
func (s *workoutService) ListPastWorkouts(userID uint) ([]domain.WorkoutSummary, error) {
	workouts, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	past := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.End().Before(now) {
			past = append(past, w)
		}
	}
	slices.SortStableFunc(past, func(a, b domain.Workout) int {
		return b.Start.Compare(a.Start)
	})
	summaries := make([]domain.WorkoutSummary, 0, len(past))
	for _, w := range past {
		summaries = append(summaries, domain.NewWorkoutSummary(w))
	}
	return summaries, nil
}

func (s *workoutService) AddWorkout(req domain.CreateWorkoutRequest, userID uint) (*domain.Workout, error) {
	if req.Start == nil || req.Start.IsZero() {
		return nil, domain.ErrMissingStartTime
	}
	req.Name = util.SanitizeText(req.Name)
	req.Comment = util.SanitizeText(req.Comment)
	if err := validation.ValidateNewWorkout(req); err != nil {
		return nil, err
	}
	exercises, err := s.resolveExercises(req.ExerciseIDs)
	if err != nil {
		return nil, err
	}
	workout := &domain.Workout{
		Name:            req.Name,
		Start:           *req.Start,
		DurationMinutes: req.DurationMinutes,
		Exercises:       exercises,
		UserID:          userID,
		Comment:         req.Comment,
	}

	existing, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkConflicts(workout, existing); err != nil {
		return nil, err
	}
	if err := s.repo.Create(workout); err != nil {
		return nil, err
	}
	observability.RecordWorkoutCreated()
	s.log.Debugf("user %d created workout %d", userID, workout.ID)
	return workout, nil
}

// UpdateWorkout merges the fields present in req into the caller's workout.
func (s *workoutService) UpdateWorkout(req domain.UpdateWorkoutRequest, userID uint) (*domain.Workout, error) {
	req.Name = sanitizeOptional(req.Name)
	req.Comment = sanitizeOptional(req.Comment)
	if err := validation.ValidateWorkoutUpdate(req); err != nil {
		return nil, err
	}
	existing, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	current, ok := findWorkout(existing, *req.ID)
	if !ok {
		return nil, &domain.WorkoutNotFoundError{ID: *req.ID}
	}

	merged := current
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Comment != nil {
		merged.Comment = *req.Comment
	}
	if req.ExerciseIDs != nil {
		exercises, err := s.resolveExercises(*req.ExerciseIDs)
		if err != nil {
			return nil, err
		}
		merged.Exercises = exercises
	}
	if req.Start != nil || req.DurationMinutes != nil {
		if req.Start != nil {
			merged.Start = *req.Start
		}
		if req.DurationMinutes != nil {
			merged.DurationMinutes = *req.DurationMinutes
		}
		if err := s.checkConflicts(&merged, existing); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	observability.RecordWorkoutUpdated()
	s.log.Debugf("user %d updated workout %d", userID, merged.ID)
	return &merged, nil
}

// DeleteWorkout removes a workout only if it belongs to the caller.
func (s *workoutService) DeleteWorkout(id, userID uint) error {
	workout, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if workout.UserID != userID {
		return &domain.WorkoutNotFoundError{ID: id}
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	observability.RecordWorkoutDeleted()
	s.log.Debugf("user %d deleted workout %d", userID, id)
	return nil
}

func (s *workoutService) checkConflicts(candidate *domain.Workout, existing []domain.Workout) error {
	err := domain.CheckConflicts(candidate, existing)
	if errors.Is(err, domain.ErrWorkoutTimeConflict) {
		observability.RecordSchedulingConflict()
		s.log.Info(err.Error())
	}
	return err
}

// resolveExercises loads the referenced exercises, ignoring duplicate ids.
func (s *workoutService) resolveExercises(ids []uint) ([]domain.Exercise, error) {
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return []domain.Exercise{}, nil
	}
	found, err := s.exercises.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]domain.Exercise, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	verr := domain.NewValidationError("invalid workout")
	exercises := make([]domain.Exercise, 0, len(unique))
	for _, id := range unique {
		e, ok := byID[id]
		if !ok {
			verr.Add("exercise_ids", fmt.Sprintf("exercise %d does not exist", id))
			continue
		}
		exercises = append(exercises, e)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return exercises, nil
}

func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := util.SanitizeText(*s)
	return &clean
}

func findWorkout(workouts []domain.Workout, id uint) (domain.Workout, bool) {
	for _, w := range workouts {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Workout{}, false
}
