package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"seungpyo.lee/PeakTrack/internal/domain"
)

var validate = validator.New()

// ValidateRegistration checks every registration field and reports all violations at once.
func ValidateRegistration(req domain.RegisterRequest, policy PasswordPolicy) error {
	verr := domain.NewValidationError("invalid registration")

	username := strings.TrimSpace(req.Username)
	switch n := utf8.RuneCountInString(username); {
	case n == 0:
		verr.Add("username", "username is required")
	case n < 5 || n > 20:
		verr.Add("username", "username must be between 5 and 20 characters")
	}

	if req.Password == "" {
		verr.Add("password", "password is required")
	} else {
		for _, v := range policy.Validate(req.Password) {
			verr.Add("password", v)
		}
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		verr.Add("email", "email is required")
	} else if err := validate.Var(email, "email"); err != nil {
		verr.Add("email", "email must be a well-formed email address")
	}

	if strings.TrimSpace(req.FirstName) == "" {
		verr.Add("first_name", "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		verr.Add("last_name", "last name is required")
	}
	if req.Age < 10 || req.Age > 80 {
		verr.Add("age", "age must be between 10 and 80")
	}
	if !req.Gender.Valid() {
		verr.Add("gender", "gender must be one of MALE, FEMALE, TRANSGENDER, INTERSEX")
	}
	if req.Height <= 0 || req.Height > 300 {
		verr.Add("height", "height must be greater than 0 and at most 300")
	}
	if req.Weight <= 0 || req.Weight > 500 {
		verr.Add("weight", "weight must be greater than 0 and at most 500")
	}
	return verr.OrNil()
}

// ValidateExercise checks a new exercise definition.
func ValidateExercise(req domain.CreateExerciseRequest) error {
	verr := domain.NewValidationError("invalid exercise")
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name is required")
	}
	if !req.Category.Valid() {
		verr.Add("category", "category must be one of CARDIO, STRENGTH, FLEX, BALANCE")
	}
	if req.MuscleGroup != "" && !req.MuscleGroup.Valid() {
		verr.Add("muscle_group", "unknown muscle group")
	}
	if req.Sets < 1 {
		verr.Add("sets", "sets must be at least 1")
	}
	if req.Repetitions < 1 {
		verr.Add("repetitions", "repetitions must be at least 1")
	}
	if req.Weight < 0 {
		verr.Add("weight", "weight cannot be negative")
	}
	return verr.OrNil()
}

// ValidateNewWorkout checks the fields of a workout to be created.
// A missing start is reported separately as domain.ErrMissingStartTime.
func ValidateNewWorkout(req domain.CreateWorkoutRequest) error {
	verr := domain.NewValidationError("invalid workout")
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name is required")
	}
	if req.DurationMinutes <= 0 {
		verr.Add("duration_minutes", "duration must be greater than 0")
	}
	return verr.OrNil()
}

// ValidateWorkoutUpdate checks the fields present in a partial update.
func ValidateWorkoutUpdate(req domain.UpdateWorkoutRequest) error {
	verr := domain.NewValidationError("invalid workout update")
	if req.ID == nil || *req.ID == 0 {
		verr.Add("id", "id is required")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		verr.Add("name", "name cannot be blank")
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		verr.Add("duration_minutes", "duration must be greater than 0")
	}
	return verr.OrNil()
}
