package services

import (
	"fmt"
	"time"

	"channel-lab/auth"
	"channel-lab/errors"
	"channel-lab/observability"
	"channel-lab/repositories"
)

type IAuthService interface {
	Login(username, password string) (Token, error)
	Register(username, email, password string) (Token, error)
	ChangePassword(username, newPassword string) error
}

type AuthService struct {
	userRepository repositories.IUserRepository
	monitoring     *observability.MonitoringManager
	tokenDuration  time.Duration
}

type Token string

func NewAuthService(repo repositories.IUserRepository,
	monitoring *observability.MonitoringManager,
	tokenDuration time.Duration) IAuthService {
	return &AuthService{
		userRepository: repo,
		monitoring:     monitoring,
		tokenDuration:  tokenDuration,
	}
}

func (s *AuthService) Register(username, email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	// 1. Validate business rules (username charset, email format,
	// password complexity). We check this before any expensive
	// cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	if _, err := s.userRepository.CreateUser(username, email, hashedPassword); err != nil {
		return "", err // Will propagate ErrUserAlreadyExists if username is taken
	}

	// 4. Generate the initial session token
	token, err := auth.GenerateToken(username, []string{"user"}, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(username, password string) (Token, error) {
	// 1. Retrieve user by username from storage
	user, err := s.userRepository.GetUser(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		s.monitoring.IncrAuthFailures()
		return "", errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		s.monitoring.IncrAuthFailures()
		return "", errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := auth.GenerateToken(user.Username, user.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

// ChangePassword replaces the stored hash for an already authenticated
// caller. Previously issued tokens remain valid until they expire.
func (s *AuthService) ChangePassword(username, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	return s.userRepository.UpdatePassword(username, hashedPassword)
}
