package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"channel-lab/auth"
	"channel-lab/errors"
	"channel-lab/mocks"
	"channel-lab/observability"
	"channel-lab/repositories"
)

func newTestMonitoring() *observability.MonitoringManager {
	return observability.NewMonitoringManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestMonitoring(), 24*time.Hour)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		username := "alice"
		email := "alice@example.com"
		password := "ComplexPass123!"

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(username, email, gomock.Not(password)).
			Return("user-uuid", nil).
			Times(1)

		token, err := svc.Register(username, email, password)

		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register("alice", "alice@example.com", "simple")

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser("alice", "alice@example.com", gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("alice", "alice@example.com", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestMonitoring(), 24*time.Hour)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		password := "Secret123456!"

		hashedPassword, _ := auth.HashPassword(password)
		storedUser := repositories.User{
			ID:           "uuid-123",
			Username:     "alice",
			PasswordHash: hashedPassword,
			Roles:        []string{"user"},
		}

		mockRepo.EXPECT().
			GetUser("alice").
			Return(storedUser, nil).
			Times(1)

		token, err := svc.Login("alice", password)

		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("alice", claims.Username)
	})

	t.Run("should return invalid credentials on wrong password", func(t *testing.T) {
		req := require.New(t)

		hashedPassword, _ := auth.HashPassword("CorrectPassword123!")
		storedUser := repositories.User{
			Username:     "alice",
			PasswordHash: hashedPassword,
		}

		mockRepo.EXPECT().
			GetUser("alice").
			Return(storedUser, nil).
			Times(1)

		_, err := svc.Login("alice", "WrongPassword123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is unknown", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetUser("ghost").
			Return(repositories.User{}, errors.ErrUserNotFound).
			Times(1)

		_, err := svc.Login("ghost", "Whatever123456!")

		// Unknown user and bad password must be indistinguishable
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestMonitoring(), 24*time.Hour)

	t.Run("should rotate the stored hash", func(t *testing.T) {
		req := require.New(t)
		newPassword := "BrandNewPass456!"

		// The stored hash must never be the plain password
		mockRepo.EXPECT().
			UpdatePassword("alice", gomock.Not(newPassword)).
			Return(nil).
			Times(1)

		req.NoError(svc.ChangePassword("alice", newPassword))
	})

	t.Run("should refuse a weak replacement password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().UpdatePassword(gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword("alice", "weak")

		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should propagate unknown user from the repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			UpdatePassword("ghost", gomock.Any()).
			Return(errors.ErrUserNotFound).
			Times(1)

		err := svc.ChangePassword("ghost", "BrandNewPass456!")

		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}
