package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pbaccount "channel-lab/proto/account"
	pbchannel "channel-lab/proto/channel"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHANNEL_SERVER_ADDR,default=localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and the
// interactive command loop. This pattern ensures clean resource management
// and error propagation.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the Channel-Lab server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if a call fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	session := &session{
		auth:    pbaccount.NewAuthServiceClient(conn),
		channel: pbchannel.NewChannelServiceClient(conn),
	}

	fmt.Printf(">>> Connected to %s (Ctrl+C or 'quit' to exit)\n", config.ServerAddress)
	fmt.Println("Commands: register <user> <email> <password> | login <user> <password> |")
	fmt.Println("  create <channel> | delete <channel> | channels | join <channel> | leave <channel> |")
	fmt.Println("  subs <channel> | promote <channel> <user> | demote <channel> <user> |")
	fmt.Println("  transfer <channel> <user> | block <channel> <user> <seconds> | banned <channel>")

	// 4. Interactive command loop.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return exitOK, nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return exitOK, nil
		}

		if err := session.dispatch(ctx, strings.Fields(line)); err != nil {
			if ctx.Err() != nil {
				return exitOK, nil
			}
			fmt.Printf("error: %v\n", err)
		}
	}
}

type session struct {
	auth    pbaccount.AuthServiceClient
	channel pbchannel.ChannelServiceClient
	token   string
}

// authCtx attaches the bearer token of the current session to an outgoing call.
func (s *session) authCtx(ctx context.Context) context.Context {
	if s.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.token)
}

func (s *session) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 3 {
			return fmt.Errorf("usage: register <user> <email> <password>")
		}
		resp, err := s.auth.Register(ctx, &pbaccount.RegisterRequest{
			Username: rest[0], Email: rest[1], Password: rest[2],
		})
		if err != nil {
			return err
		}
		s.token = resp.Token
		fmt.Printf("registered as %s\n", resp.Username)

	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: login <user> <password>")
		}
		resp, err := s.auth.Login(ctx, &pbaccount.LoginRequest{
			Username: rest[0], Password: rest[1],
		})
		if err != nil {
			return err
		}
		s.token = resp.Token
		fmt.Printf("logged in as %s\n", resp.Username)

	case "create":
		if len(rest) != 1 {
			return fmt.Errorf("usage: create <channel>")
		}
		_, err := s.channel.CreateChannel(s.authCtx(ctx), &pbchannel.CreateChannelRequest{ChannelName: rest[0]})
		return err

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <channel>")
		}
		_, err := s.channel.DeleteChannel(s.authCtx(ctx), &pbchannel.ChannelRequest{ChannelName: rest[0]})
		return err

	case "channels":
		resp, err := s.channel.ListChannels(s.authCtx(ctx), &pbchannel.ListChannelsRequest{})
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(resp.Channels, "\n"))

	case "join":
		if len(rest) != 1 {
			return fmt.Errorf("usage: join <channel>")
		}
		_, err := s.channel.Subscribe(s.authCtx(ctx), &pbchannel.ChannelRequest{ChannelName: rest[0]})
		return err

	case "leave":
		if len(rest) != 1 {
			return fmt.Errorf("usage: leave <channel>")
		}
		_, err := s.channel.Unsubscribe(s.authCtx(ctx), &pbchannel.ChannelRequest{ChannelName: rest[0]})
		return err

	case "subs":
		if len(rest) != 1 {
			return fmt.Errorf("usage: subs <channel>")
		}
		resp, err := s.channel.ListSubscribers(s.authCtx(ctx), &pbchannel.ChannelRequest{ChannelName: rest[0]})
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(resp.Subscribers, "\n"))

	case "promote":
		return s.memberAction(ctx, rest, s.channel.PromoteAdmin, "promote")

	case "demote":
		return s.memberAction(ctx, rest, s.channel.DemoteAdmin, "demote")

	case "transfer":
		return s.memberAction(ctx, rest, s.channel.TransferChiefAdmin, "transfer")

	case "block":
		if len(rest) != 3 {
			return fmt.Errorf("usage: block <channel> <user> <seconds>")
		}
		seconds, err := strconv.ParseInt(rest[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", rest[2], err)
		}
		_, err = s.channel.BlockUser(s.authCtx(ctx), &pbchannel.BlockUserRequest{
			ChannelName: rest[0], Username: rest[1], DurationSeconds: seconds,
		})
		return err

	case "banned":
		if len(rest) != 1 {
			return fmt.Errorf("usage: banned <channel>")
		}
		resp, err := s.channel.ListBannedUsers(s.authCtx(ctx), &pbchannel.ChannelRequest{ChannelName: rest[0]})
		if err != nil {
			return err
		}
		for _, b := range resp.Banned {
			fmt.Printf("%s until %s\n", b.Username, b.ExpiresAt.AsTime().Format("15:04:05"))
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

type memberRPC func(ctx context.Context, in *pbchannel.MemberRequest, opts ...grpc.CallOption) (*pbchannel.ChannelActionResponse, error)

func (s *session) memberAction(ctx context.Context, rest []string, rpc memberRPC, name string) error {
	if len(rest) != 2 {
		return fmt.Errorf("usage: %s <channel> <user>", name)
	}
	_, err := rpc(s.authCtx(ctx), &pbchannel.MemberRequest{ChannelName: rest[0], Username: rest[1]})
	return err
}
