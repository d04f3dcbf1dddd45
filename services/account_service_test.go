package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"channel-lab/errors"
	"channel-lab/mocks"
	"channel-lab/repositories"
)

func TestAccountService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAccountService(mockRepo)

	t.Run("should return the stored profile", func(t *testing.T) {
		req := require.New(t)
		stored := repositories.User{
			Username: "alice",
			Profile:  repositories.Profile{FirstName: "Alice", Bio: "hello"},
		}

		mockRepo.EXPECT().GetUser("alice").Return(stored, nil).Times(1)

		profile, err := svc.GetProfile("alice")
		req.NoError(err)
		req.Equal("Alice", profile.FirstName)
		req.Equal("hello", profile.Bio)
	})

	t.Run("should propagate unknown user on read", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUser("ghost").Return(repositories.User{}, errors.ErrUserNotFound).Times(1)

		_, err := svc.GetProfile("ghost")
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should forward profile updates", func(t *testing.T) {
		req := require.New(t)
		update := repositories.Profile{FirstName: "Alice", LastName: "Doe"}

		mockRepo.EXPECT().UpdateProfile("alice", update).Return(nil).Times(1)

		req.NoError(svc.UpdateProfile("alice", update))
	})
}

func TestAccountService_Config(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAccountService(mockRepo)

	t.Run("should return the stored config", func(t *testing.T) {
		req := require.New(t)
		stored := repositories.User{
			Username: "alice",
			Config:   repositories.Config{Blocked: []string{"troll"}, ChatFilter: true},
		}

		mockRepo.EXPECT().GetUser("alice").Return(stored, nil).Times(1)

		config, err := svc.GetConfig("alice")
		req.NoError(err)
		req.True(config.ChatFilter)
		req.Equal([]string{"troll"}, config.Blocked)
	})

	t.Run("should forward config updates", func(t *testing.T) {
		req := require.New(t)
		update := repositories.Config{ChatFilter: false}

		mockRepo.EXPECT().UpdateConfig("alice", update).Return(nil).Times(1)

		req.NoError(svc.UpdateConfig("alice", update))
	})
}
