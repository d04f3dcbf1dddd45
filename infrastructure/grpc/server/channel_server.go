package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"channel-lab/auth"
	"channel-lab/domain/channel"
	"channel-lab/errors"
	pb "channel-lab/proto/channel"
	"channel-lab/services"
)

type ChannelServer struct {
	pb.UnimplementedChannelServiceServer
	channelService services.IChannelService
	log            *slog.Logger
}

func NewChannelServer(log *slog.Logger, channelService services.IChannelService) *ChannelServer {
	return &ChannelServer{channelService: channelService, log: log}
}

func (s *ChannelServer) CreateChannel(ctx context.Context, req *pb.CreateChannelRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.CreateChannel(req.ChannelName, username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("channel created", "channel", req.ChannelName, "chief_admin", username)
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) DeleteChannel(ctx context.Context, req *pb.ChannelRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.DeleteChannel(req.ChannelName, username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("channel deleted", "channel", req.ChannelName, "requester", username)
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) ListChannels(_ context.Context, _ *pb.ListChannelsRequest) (*pb.ListChannelsResponse, error) {
	return &pb.ListChannelsResponse{Channels: s.channelService.ChannelNames()}, nil
}

func (s *ChannelServer) Subscribe(ctx context.Context, req *pb.ChannelRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.Subscribe(req.ChannelName, username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) Unsubscribe(ctx context.Context, req *pb.ChannelRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.Unsubscribe(req.ChannelName, username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) ListSubscribers(_ context.Context, req *pb.ChannelRequest) (*pb.ListSubscribersResponse, error) {
	subscribers, err := s.channelService.ListSubscribers(req.ChannelName)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListSubscribersResponse{Subscribers: subscribers}, nil
}

func (s *ChannelServer) PromoteAdmin(ctx context.Context, req *pb.MemberRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.PromoteAdmin(req.ChannelName, username, req.Username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("admin promoted", "channel", req.ChannelName, "target", req.Username, "requester", username)
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) DemoteAdmin(ctx context.Context, req *pb.MemberRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.DemoteAdmin(req.ChannelName, username, req.Username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) TransferChiefAdmin(ctx context.Context, req *pb.MemberRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.channelService.TransferChiefAdmin(req.ChannelName, username, req.Username); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("chief admin transferred", "channel", req.ChannelName,
		"from", username, "to", req.Username)
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) BlockUser(ctx context.Context, req *pb.BlockUserRequest) (*pb.ChannelActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(req.DurationSeconds) * time.Second
	if err := s.channelService.BlockUser(req.ChannelName, username, req.Username, duration); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("user blocked", "channel", req.ChannelName, "target", req.Username,
		"requester", username, "duration", duration)
	return &pb.ChannelActionResponse{Success: true}, nil
}

func (s *ChannelServer) ListBannedUsers(_ context.Context, req *pb.ChannelRequest) (*pb.ListBannedUsersResponse, error) {
	banned, err := s.channelService.ListBannedUsers(req.ChannelName)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListBannedUsersResponse{Banned: toBannedUsers(banned)}, nil
}

func toBannedUsers(banned []channel.BannedUser) []*pb.BannedUser {
	return lo.Map(banned, func(item channel.BannedUser, _ int) *pb.BannedUser {
		return &pb.BannedUser{
			Username:  item.Username,
			ExpiresAt: timestamppb.New(item.ExpiresAt),
		}
	})
}
