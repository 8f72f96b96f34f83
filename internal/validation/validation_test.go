package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/PeakTrack/internal/config"
	"seungpyo.lee/PeakTrack/internal/domain"
)

func TestPasswordPolicyReportsEveryViolation(t *testing.T) {
	policy := DefaultPasswordPolicy()

	violations := policy.Validate("abc")
	assert.ElementsMatch(t, []string{
		"Password must be between 6 and 20 characters",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one digit",
		"Password must contain at least one special character",
	}, violations)

	violations = policy.Validate("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.ElementsMatch(t, []string{
		"Password must be between 6 and 20 characters",
		"Password must contain at least one lowercase letter",
		"Password must contain at least one digit",
		"Password must contain at least one special character",
	}, violations)
}

func TestPasswordPolicyAcceptsStrongPassword(t *testing.T) {
	assert.Empty(t, DefaultPasswordPolicy().Validate("Str0ng!pw"))
}

func TestPasswordPolicyRelaxedRules(t *testing.T) {
	policy := NewPasswordPolicy(config.PasswordConfig{MinLength: 4, MaxLength: 8})
	assert.Empty(t, policy.Validate("abcd"))
	assert.Len(t, policy.Validate("abc"), 1)
}

func validRegistration() domain.RegisterRequest {
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

func TestValidateRegistrationAcceptsValidRequest(t *testing.T) {
	assert.NoError(t, ValidateRegistration(validRegistration(), DefaultPasswordPolicy()))
}

func TestValidateRegistrationCollectsAllFields(t *testing.T) {
	req := domain.RegisterRequest{
		Username: "abc",
		Password: "weak",
		Email:    "not-an-email",
		Age:      5,
		Gender:   "ROBOT",
	}
	err := ValidateRegistration(req, DefaultPasswordPolicy())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"username", "password", "email", "first_name", "last_name", "age", "gender", "height", "weight"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.Greater(t, len(verr.Fields["password"]), 1)
}

func TestValidateExercise(t *testing.T) {
	ok := domain.CreateExerciseRequest{Name: "Squat", Category: domain.CategoryStrength, MuscleGroup: domain.MuscleQuads, Sets: 3, Repetitions: 10, Weight: 80}
	assert.NoError(t, ValidateExercise(ok))

	err := ValidateExercise(domain.CreateExerciseRequest{Category: "YOGA", MuscleGroup: "TOES", Weight: -1})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 6)
}

func TestValidateWorkoutUpdate(t *testing.T) {
	id := uint(3)
	zero := 0
	blank := "  "

	assert.NoError(t, ValidateWorkoutUpdate(domain.UpdateWorkoutRequest{ID: &id}))

	err := ValidateWorkoutUpdate(domain.UpdateWorkoutRequest{Name: &blank, DurationMinutes: &zero})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "id")
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "duration_minutes")
}
