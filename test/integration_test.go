package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"channel-lab/auth"
	"channel-lab/domain/channel"
	"channel-lab/errors"
	grpcserver "channel-lab/infrastructure/grpc/server"
	"channel-lab/observability"
	pbaccount "channel-lab/proto/account"
	pbchannel "channel-lab/proto/channel"
	"channel-lab/repositories"
	"channel-lab/services"
)

// Test_Scenario drives the gRPC handlers end to end against a real Badger
// store: three accounts register, a channel is founded, moderation rights
// move around and a short-lived ban expires.
func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	registry := channel.NewRegistry()
	userRepository := repositories.NewUserRepository(db)
	authService := services.NewAuthService(userRepository, monitoring, time.Hour)
	channelService := services.NewChannelService(registry, userRepository, monitoring)

	authServer := grpcserver.NewAuthServer(log, authService)
	channelServer := grpcserver.NewChannelServer(log, channelService)

	// 1. Three users register through the public endpoint
	users := []string{"alice", "bob", "carol"}
	for _, username := range users {
		resp, err := authServer.Register(ctx, &pbaccount.RegisterRequest{
			Username: username,
			Email:    username + "@example.com",
			Password: "ComplexPass123!",
		})
		req.NoError(err)
		req.NotEmpty(resp.Token)

		// The token must carry the username the interceptor will inject
		claims, err := auth.ValidateToken(resp.Token)
		req.NoError(err)
		req.Equal(username, claims.Username)
	}

	// Authenticated contexts, as the interceptor would build them
	as := func(username string) context.Context {
		return context.WithValue(ctx, auth.UsernameKey, username)
	}

	// 2. Alice founds a channel, the others join
	_, err = channelServer.CreateChannel(as("alice"), &pbchannel.CreateChannelRequest{ChannelName: "gaming"})
	req.NoError(err)
	for _, username := range []string{"bob", "carol"} {
		_, err = channelServer.Subscribe(as(username), &pbchannel.ChannelRequest{ChannelName: "gaming"})
		req.NoError(err)
	}

	subs, err := channelServer.ListSubscribers(ctx, &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)
	req.ElementsMatch(users, subs.Subscribers)

	// 3. Bob becomes an admin and bans Carol for one second
	_, err = channelServer.PromoteAdmin(as("alice"), &pbchannel.MemberRequest{
		ChannelName: "gaming", Username: "bob",
	})
	req.NoError(err)

	_, err = channelServer.BlockUser(as("bob"), &pbchannel.BlockUserRequest{
		ChannelName: "gaming", Username: "carol", DurationSeconds: 1,
	})
	req.NoError(err)

	// The ban evicted Carol and keeps her out
	subs, err = channelServer.ListSubscribers(ctx, &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)
	req.NotContains(subs.Subscribers, "carol")

	_, err = channelServer.Subscribe(as("carol"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.Error(err)

	banned, err := channelServer.ListBannedUsers(ctx, &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)
	req.Len(banned.Banned, 1)
	req.Equal("carol", banned.Banned[0].Username)

	// 4. Once the ban lapses, Carol can come back
	time.Sleep(1100 * time.Millisecond)

	_, err = channelServer.Subscribe(as("carol"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)

	banned, err = channelServer.ListBannedUsers(ctx, &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)
	req.Empty(banned.Banned)

	// 5. Chief authority moves to Bob, then Alice may leave
	_, err = channelServer.TransferChiefAdmin(as("alice"), &pbchannel.MemberRequest{
		ChannelName: "gaming", Username: "bob",
	})
	req.NoError(err)

	_, err = channelServer.Unsubscribe(as("alice"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)

	// 6. Only the new chief can delete the channel
	_, err = channelServer.DeleteChannel(as("carol"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.Error(err)

	_, err = channelServer.DeleteChannel(as("bob"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.NoError(err)

	_, err = channelServer.Subscribe(as("carol"), &pbchannel.ChannelRequest{ChannelName: "gaming"})
	req.Error(err)

	// Counters saw the whole scenario
	stats := monitoring.GetLatest()
	req.Zero(stats.ChannelsCreated) // snapshot not refreshed yet, counters live on the manager
	req.Equal(uint64(1), monitoring.ChannelsCreated)
	req.Equal(uint64(1), monitoring.BansIssued)
}

// duplicate registration must surface as a user conflict
func TestRegisterTwiceFails(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	monitoring := observability.NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelError))
	authService := services.NewAuthService(repositories.NewUserRepository(db), monitoring, time.Hour)

	_, err = authService.Register("dave", "dave@example.com", "ComplexPass123!")
	req.NoError(err)

	_, err = authService.Register("dave", "other@example.com", "ComplexPass123!")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}
