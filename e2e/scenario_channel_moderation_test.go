package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pbaccount "channel-lab/proto/account"
	pbchannel "channel-lab/proto/channel"
)

type testChannelModerationSuite struct {
	BaseGrpcSuite
}

func TestChannelModerationSuite(t *testing.T) {
	suite.Run(t, &testChannelModerationSuite{})
}

func (s *testChannelModerationSuite) TestFullModerationFlow() {
	// Unique names so the suite can rerun against a long-lived server
	suffix := uuid.New().String()[:8]
	chief := "chief" + suffix
	member := "member" + suffix
	channelName := "arena-" + suffix

	var chiefToken, memberToken string

	s.Run("Step 0: Register both participants", func() {
		s.WithAuth("Registering accounts", func(ctx context.Context, client pbaccount.AuthServiceClient) {
			for _, username := range []string{chief, member} {
				resp, err := client.Register(ctx, &pbaccount.RegisterRequest{
					Username: username,
					Email:    fmt.Sprintf("%s@example.com", username),
					Password: "ComplexPass123!",
				})
				s.Require().NoError(err, "Failed to register "+username)
				s.Require().NotEmpty(resp.Token)

				if username == chief {
					chiefToken = resp.Token
				} else {
					memberToken = resp.Token
				}
			}
		})
	})

	s.Run("Step 1: Found the channel and join it", func() {
		s.WithChannels("Founding channel", chiefToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			resp, err := client.CreateChannel(ctx, &pbchannel.CreateChannelRequest{ChannelName: channelName})
			s.Require().NoError(err)
			s.Require().True(resp.Success)
		})

		s.WithChannels("Member joins", memberToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			_, err := client.Subscribe(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().NoError(err)

			subs, err := client.ListSubscribers(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().NoError(err)
			s.Require().Contains(subs.Subscribers, chief)
			s.Require().Contains(subs.Subscribers, member)
		})
	})

	s.Run("Step 2: Member cannot moderate, chief can", func() {
		s.WithChannels("Member tries to ban the chief", memberToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			_, err := client.BlockUser(ctx, &pbchannel.BlockUserRequest{
				ChannelName: channelName, Username: chief, DurationSeconds: 60,
			})
			s.Require().Error(err, "A plain subscriber must not be able to ban")
		})

		s.WithChannels("Chief bans the member briefly", chiefToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			_, err := client.BlockUser(ctx, &pbchannel.BlockUserRequest{
				ChannelName: channelName, Username: member, DurationSeconds: 2,
			})
			s.Require().NoError(err)

			banned, err := client.ListBannedUsers(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().NoError(err)
			s.Require().Len(banned.Banned, 1)
			s.Require().Equal(member, banned.Banned[0].Username)
		})
	})

	s.Run("Step 3: Ban lapses, member returns", func() {
		s.WithChannels("Member blocked then readmitted", memberToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			_, err := client.Subscribe(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().Error(err, "Re-joining during an active ban must fail")

			time.Sleep(2500 * time.Millisecond)

			_, err = client.Subscribe(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().NoError(err, "Re-joining after expiry must succeed")
		})
	})

	s.Run("Step 4: Chief tears the channel down", func() {
		s.WithChannels("Deleting channel", chiefToken, func(ctx context.Context, client pbchannel.ChannelServiceClient) {
			_, err := client.DeleteChannel(ctx, &pbchannel.ChannelRequest{ChannelName: channelName})
			s.Require().NoError(err)

			channels, err := client.ListChannels(ctx, &pbchannel.ListChannelsRequest{})
			s.Require().NoError(err)
			s.Require().NotContains(channels.Channels, channelName)
		})
	})
}
