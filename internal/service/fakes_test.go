package service

import (
	"errors"
	"slices"

	"seungpyo.lee/PeakTrack/internal/domain"
)

type fakeWorkoutRepo struct {
	workouts    map[uint]domain.Workout
	nextID      uint
	createCalls int
	updateCalls int
	deleteCalls int
	listCalls   int
	err         error
}

func newFakeWorkoutRepo(workouts ...domain.Workout) *fakeWorkoutRepo {
	repo := &fakeWorkoutRepo{workouts: make(map[uint]domain.Workout), nextID: 100}
	for _, w := range workouts {
		repo.workouts[w.ID] = w
	}
	return repo
}

func (r *fakeWorkoutRepo) Create(workout *domain.Workout) error {
	r.createCalls++
	if r.err != nil {
		return r.err
	}
	r.nextID++
	workout.ID = r.nextID
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) GetByID(id uint) (*domain.Workout, error) {
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.workouts[id]
	if !ok {
		return nil, &domain.WorkoutNotFoundError{ID: id}
	}
	return &w, nil
}

func (r *fakeWorkoutRepo) ListByUserID(userID uint) ([]domain.Workout, error) {
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	var result []domain.Workout
	for _, w := range r.workouts {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	// ordered by id, not by start
	slices.SortFunc(result, func(a, b domain.Workout) int { return int(a.ID) - int(b.ID) })
	return result, nil
}

func (r *fakeWorkoutRepo) Update(workout *domain.Workout) error {
	r.updateCalls++
	if _, ok := r.workouts[workout.ID]; !ok {
		return &domain.WorkoutNotFoundError{ID: workout.ID}
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) Delete(id uint) error {
	r.deleteCalls++
	delete(r.workouts, id)
	return nil
}

func (r *fakeWorkoutRepo) DeleteByUserID(userID uint) error {
	for id, w := range r.workouts {
		if w.UserID == userID {
			delete(r.workouts, id)
		}
	}
	return nil
}

type fakeExerciseRepo struct {
	exercises map[uint]domain.Exercise
	nextID    uint
}

func newFakeExerciseRepo(exercises ...domain.Exercise) *fakeExerciseRepo {
	repo := &fakeExerciseRepo{exercises: make(map[uint]domain.Exercise)}
	for _, e := range exercises {
		repo.exercises[e.ID] = e
		repo.nextID = max(repo.nextID, e.ID)
	}
	return repo
}

func (r *fakeExerciseRepo) Create(exercise *domain.Exercise) error {
	r.nextID++
	exercise.ID = r.nextID
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) GetByID(id uint) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	return &e, nil
}

func (r *fakeExerciseRepo) GetByIDs(ids []uint) ([]domain.Exercise, error) {
	var found []domain.Exercise
	for _, id := range ids {
		if e, ok := r.exercises[id]; ok {
			found = append(found, e)
		}
	}
	return found, nil
}

func (r *fakeExerciseRepo) List() ([]domain.Exercise, error) {
	var all []domain.Exercise
	for _, e := range r.exercises {
		all = append(all, e)
	}
	slices.SortFunc(all, func(a, b domain.Exercise) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return all, nil
}

type fakeUserRepo struct {
	users       map[uint]domain.User
	nextID      uint
	deleted     []uint
	lookupError error
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
		repo.nextID = max(repo.nextID, u.ID)
	}
	return repo
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) find(match func(domain.User) bool) (*domain.User, error) {
	if r.lookupError != nil {
		return nil, r.lookupError
	}
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) GetByEmail(email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) GetByID(id uint) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

var errStore = errors.New("store unavailable")
