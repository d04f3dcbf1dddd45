package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"channel-lab/domain/channel"
	"channel-lab/errors"
	"channel-lab/mocks"
)

func newChannelServiceUnderTest(t *testing.T) (IChannelService, *mocks.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewChannelService(channel.NewRegistry(), mockRepo, newTestMonitoring())
	return svc, mockRepo
}

func TestChannelService_CreateAndDelete(t *testing.T) {
	req := require.New(t)
	svc, _ := newChannelServiceUnderTest(t)

	req.NoError(svc.CreateChannel("gaming", "alice"))
	req.ErrorIs(svc.CreateChannel("gaming", "bob"), errors.ErrChannelAlreadyExists)
	req.Contains(svc.ChannelNames(), "gaming")

	// Bob never became an admin, deletion is for the chief only
	req.ErrorIs(svc.DeleteChannel("gaming", "bob"), errors.ErrForbidden)
	req.NoError(svc.DeleteChannel("gaming", "alice"))
	req.Empty(svc.ChannelNames())
}

func TestChannelService_SubscriptionFlow(t *testing.T) {
	req := require.New(t)
	svc, _ := newChannelServiceUnderTest(t)

	req.ErrorIs(svc.Subscribe("nowhere", "bob"), errors.ErrChannelNotFound)

	req.NoError(svc.CreateChannel("gaming", "alice"))
	req.NoError(svc.Subscribe("gaming", "bob"))

	subs, err := svc.ListSubscribers("gaming")
	req.NoError(err)
	req.ElementsMatch([]string{"alice", "bob"}, subs)

	req.NoError(svc.Unsubscribe("gaming", "bob"))

	// The founder cannot walk away from the chief role
	req.ErrorIs(svc.Unsubscribe("gaming", "alice"), errors.ErrInvalidState)
}

func TestChannelService_PromotionRequiresModerationRights(t *testing.T) {
	req := require.New(t)
	svc, _ := newChannelServiceUnderTest(t)

	req.NoError(svc.CreateChannel("gaming", "alice"))
	req.NoError(svc.Subscribe("gaming", "bob"))
	req.NoError(svc.Subscribe("gaming", "carol"))

	// A plain subscriber cannot hand out admin rights
	req.ErrorIs(svc.PromoteAdmin("gaming", "bob", "carol"), errors.ErrForbidden)

	req.NoError(svc.PromoteAdmin("gaming", "alice", "bob"))

	// Bob is an admin now and may promote in turn
	req.NoError(svc.PromoteAdmin("gaming", "bob", "carol"))

	// Promoting a non-subscriber is a state error, not an authorization one
	req.ErrorIs(svc.PromoteAdmin("gaming", "alice", "ghost"), errors.ErrInvalidState)

	req.NoError(svc.DemoteAdmin("gaming", "alice", "carol"))
	req.ErrorIs(svc.DemoteAdmin("gaming", "carol", "bob"), errors.ErrForbidden)
}

func TestChannelService_TransferChiefAdmin(t *testing.T) {
	req := require.New(t)
	svc, _ := newChannelServiceUnderTest(t)

	req.NoError(svc.CreateChannel("gaming", "alice"))
	req.NoError(svc.Subscribe("gaming", "bob"))
	req.NoError(svc.PromoteAdmin("gaming", "alice", "bob"))

	// Admins cannot seize the chief role on their own
	req.ErrorIs(svc.TransferChiefAdmin("gaming", "bob", "bob"), errors.ErrForbidden)

	req.NoError(svc.TransferChiefAdmin("gaming", "alice", "bob"))

	// Alice kept admin rights, so she may now leave; Bob cannot
	req.NoError(svc.Unsubscribe("gaming", "alice"))
	req.ErrorIs(svc.Unsubscribe("gaming", "bob"), errors.ErrInvalidState)
}

func TestChannelService_BlockUser(t *testing.T) {
	svc, mockRepo := newChannelServiceUnderTest(t)

	req := require.New(t)
	req.NoError(svc.CreateChannel("gaming", "alice"))
	req.NoError(svc.Subscribe("gaming", "bob"))
	req.NoError(svc.Subscribe("gaming", "carol"))
	req.NoError(svc.PromoteAdmin("gaming", "alice", "bob"))

	t.Run("should refuse a non-admin requester before touching the directory", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Exists(gomock.Any()).Times(0)

		err := svc.BlockUser("gaming", "carol", "bob", time.Minute)
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should refuse an unknown target account", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Exists("ghost").Return(false, nil).Times(1)

		err := svc.BlockUser("gaming", "alice", "ghost", time.Minute)
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should refuse to ban a moderator", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Exists("bob").Return(true, nil).Times(1)

		err := svc.BlockUser("gaming", "alice", "bob", time.Minute)
		req.ErrorIs(err, errors.ErrInvalidState)
	})

	t.Run("should ban a subscriber and evict them", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Exists("carol").Return(true, nil).Times(1)

		req.NoError(svc.BlockUser("gaming", "alice", "carol", time.Minute))

		subs, err := svc.ListSubscribers("gaming")
		req.NoError(err)
		req.NotContains(subs, "carol")

		banned, err := svc.ListBannedUsers("gaming")
		req.NoError(err)
		req.Len(banned, 1)
		req.Equal("carol", banned[0].Username)

		// Re-joining while the ban is active is refused
		req.ErrorIs(svc.Subscribe("gaming", "carol"), errors.ErrForbidden)
	})
}
