package domain

import "time"

type Gender string

const (
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderTransgender Gender = "TRANSGENDER"
	GenderIntersex    Gender = "INTERSEX"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderTransgender, GenderIntersex:
		return true
	}
	return false
}

// User owns its workouts through Workout.UserID; there is no back-reference slice.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Password  string    `json:"-" gorm:"not null"` // Hidden in JSON responses
	Name      string    `json:"name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Age       int       `json:"age" gorm:"not null"`
	Gender    Gender    `json:"gender" gorm:"type:varchar(16);not null"`
	Height    int       `json:"height" gorm:"not null"`
	Weight    int       `json:"weight" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Gender    Gender `json:"gender"`
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
}

type UserRepository interface {
	Create(user *User) error
	GetByUsername(username string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByID(id uint) (*User, error)
	// Delete removes the user together with every workout it owns.
	Delete(id uint) error
}

type AuthService interface {
	SignUp(req RegisterRequest) (*User, error)
	Authenticate(req LoginRequest) (*User, error)
}

type UserService interface {
	GetCurrentUser(username string) (*User, error)
	// ResolveUser loads the account behind an authenticated request.
	// A missing account yields ErrUnauthorized.
	ResolveUser(userID uint) (*User, error)
	// DeleteAccount removes the user and every workout it owns.
	DeleteAccount(userID uint) error
}
