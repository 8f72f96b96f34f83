package service

import (
	"errors"

	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

type userService struct {
	repo domain.UserRepository
	log  *logger.Logger
}

func NewUserService(repo domain.UserRepository, log *logger.Logger) domain.UserService {
	return &userService{repo: repo, log: log.Named("user")}
}

// GetCurrentUser resolves the authenticated username to its account.
func (s *userService) GetCurrentUser(username string) (*domain.User, error) {
	return s.repo.GetByUsername(username)
}

func (s *userService) ResolveUser(userID uint) (*domain.User, error) {
	user, err := s.repo.GetByID(userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.log.Warnf("token presented for missing user %d", userID)
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteAccount(userID uint) error {
	if err := s.repo.Delete(userID); err != nil {
		return err
	}
	s.log.Infof("deleted user %d and its workouts", userID)
	return nil
}
