package service

import (
	"errors"
	"fmt"
	"strings"

	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/observability"
	"seungpyo.lee/PeakTrack/internal/util"
	"seungpyo.lee/PeakTrack/internal/validation"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

// authService implements domain.AuthService using a UserRepository.
type authService struct {
	repo   domain.UserRepository
	policy validation.PasswordPolicy
	log    *logger.Logger
}

// NewAuthService creates a new AuthService with the given UserRepository and password policy.
func NewAuthService(repo domain.UserRepository, policy validation.PasswordPolicy, log *logger.Logger) domain.AuthService {
	return &authService{repo: repo, policy: policy, log: log.Named("auth")}
}

// SignUp validates and creates a new user account.
func (s *authService) SignUp(req domain.RegisterRequest) (*domain.User, error) {
	req.FirstName = util.SanitizeText(req.FirstName)
	req.LastName = util.SanitizeText(req.LastName)
	if err := validation.ValidateRegistration(req, s.policy); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if taken, err := exists(s.repo.GetByUsername(username)); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameConflict
	}
	if taken, err := exists(s.repo.GetByEmail(email)); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailConflict
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Username: username,
		Password: hashedPassword,
		Name:     req.FirstName,
		LastName: req.LastName,
		Email:    email,
		Age:      req.Age,
		Gender:   req.Gender,
		Height:   req.Height,
		Weight:   req.Weight,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	s.log.Infof("registered user %s", user.Username)
	return user, nil
}

// Authenticate verifies the credentials. Unknown usernames and wrong passwords fail the same way.
func (s *authService) Authenticate(req domain.LoginRequest) (*domain.User, error) {
	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.loginFailed(req.Username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.PasswordMatches(user.Password, req.Password) {
		s.loginFailed(req.Username)
		return nil, domain.ErrInvalidCredentials
	}
	observability.RecordLogin(true)
	return user, nil
}

// exists interprets a user lookup, treating ErrUserNotFound as absence.
func exists(user *domain.User, err error) (bool, error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *authService) loginFailed(username string) {
	observability.RecordLogin(false)
	s.log.Warnf("failed login for %q", username)
}
