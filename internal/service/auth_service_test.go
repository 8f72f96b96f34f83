package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/util"
	"seungpyo.lee/PeakTrack/internal/validation"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

func registration() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username:  "runner01",
		Password:  "Str0ng!pw",
		Email:     "runner@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       30,
		Gender:    domain.GenderFemale,
		Height:    170,
		Weight:    60,
	}
}

func newTestAuthService(repo *fakeUserRepo) domain.AuthService {
	return NewAuthService(repo, validation.DefaultPasswordPolicy(), logger.New("info"))
}

func TestSignUpHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.SignUp(registration())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, "Str0ng!pw", user.Password)
	assert.True(t, util.PasswordMatches(user.Password, "Str0ng!pw"))
}

func TestSignUpValidatesSanitizedNames(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := registration()
	req.FirstName = "<b></b>"
	req.LastName = "O'Brien & Co"
	_, err := svc.SignUp(req)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "first_name")
	assert.Empty(t, repo.users)

	req.FirstName = "<i>Ada</i>"
	user, err := svc.SignUp(req)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "O'Brien & Co", user.LastName)
}

func TestSignUpConflicts(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 1, Username: "runner01", Email: "first@example.com"})
	svc := newTestAuthService(repo)

	_, err := svc.SignUp(registration())
	assert.ErrorIs(t, err, domain.ErrUsernameConflict)

	req := registration()
	req.Username = "runner02"
	req.Email = "first@example.com"
	_, err = svc.SignUp(req)
	assert.ErrorIs(t, err, domain.ErrEmailConflict)
	assert.Len(t, repo.users, 1)
}

func TestSignUpReportsAllViolations(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := registration()
	req.Password = "weak"
	req.Age = 99
	_, err := svc.SignUp(req)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields["password"], 4)
	assert.Contains(t, verr.Fields, "age")
	assert.Empty(t, repo.users)
}

func TestSignUpPropagatesStoreErrors(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupError = errStore
	_, err := newTestAuthService(repo).SignUp(registration())
	assert.ErrorIs(t, err, errStore)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	_, err := svc.SignUp(registration())
	require.NoError(t, err)

	user, err := svc.Authenticate(domain.LoginRequest{Username: "runner01", Password: "Str0ng!pw"})
	require.NoError(t, err)
	assert.Equal(t, "runner01", user.Username)

	_, err = svc.Authenticate(domain.LoginRequest{Username: "runner01", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(domain.LoginRequest{Username: "nobody", Password: "Str0ng!pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserServiceDeleteAccount(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 4, Username: "climber"})
	svc := NewUserService(repo, logger.New("info"))

	user, err := svc.GetCurrentUser("climber")
	require.NoError(t, err)
	assert.Equal(t, uint(4), user.ID)

	require.NoError(t, svc.DeleteAccount(4))
	assert.Equal(t, []uint{4}, repo.deleted)

	_, err = svc.GetCurrentUser("climber")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteAccount(4), domain.ErrUserNotFound)
}

func TestUserServiceResolveUser(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 4, Username: "climber"})
	svc := NewUserService(repo, logger.New("info"))

	user, err := svc.ResolveUser(4)
	require.NoError(t, err)
	assert.Equal(t, "climber", user.Username)

	require.NoError(t, svc.DeleteAccount(4))
	_, err = svc.ResolveUser(4)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.lookupError = errStore
	_, err = svc.ResolveUser(4)
	assert.ErrorIs(t, err, errStore)
}

func TestExerciseService(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)

	created, err := svc.CreateExercise(domain.CreateExerciseRequest{
		Name: "Squat", Category: domain.CategoryStrength, MuscleGroup: domain.MuscleQuads, Sets: 3, Repetitions: 10,
	})
	require.NoError(t, err)
	_, err = svc.CreateExercise(domain.CreateExerciseRequest{
		Name: "Bench press", Category: domain.CategoryStrength, Sets: 3, Repetitions: 8, Weight: 60,
	})
	require.NoError(t, err)

	got, err := svc.GetExercise(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Squat", got.Name)

	all, err := svc.ListExercises()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bench press", all[0].Name)

	_, err = svc.CreateExercise(domain.CreateExerciseRequest{Name: "Plank"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetExercise(404)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}
