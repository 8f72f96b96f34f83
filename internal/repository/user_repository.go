package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"seungpyo.lee/PeakTrack/internal/domain"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by username.
func (r *userRepository) GetByUsername(username string) (*domain.User, error) {
	return r.first("username = ?", username)
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.first("email = ?", email)
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(id uint) (*domain.User, error) {
	return r.first("id = ?", id)
}

func (r *userRepository) first(query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Delete removes the user and every workout it owns in one transaction.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteWorkoutsByUser(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&domain.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
