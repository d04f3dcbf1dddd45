package server

import (
	"context"
	"log/slog"

	"channel-lab/auth"
	"channel-lab/errors"
	pb "channel-lab/proto/account"
	"channel-lab/repositories"
	"channel-lab/services"
)

type AccountServer struct {
	pb.UnimplementedAccountServiceServer
	authService    services.IAuthService
	accountService services.IAccountService
	log            *slog.Logger
}

func NewAccountServer(log *slog.Logger, authService services.IAuthService,
	accountService services.IAccountService) *AccountServer {
	return &AccountServer{
		authService:    authService,
		accountService: accountService,
		log:            log,
	}
}

func (s *AccountServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.AccountActionResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.authService.ChangePassword(username, req.Password); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("password changed", "username", username)
	return &pb.AccountActionResponse{Success: true}, nil
}

// GetProfile is the only read that accepts a target username, so user pages
// can be viewed by other members. An empty target means the caller itself.
func (s *AccountServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	target := req.Username
	if target == "" {
		username, err := auth.UsernameFromContext(ctx)
		if err != nil {
			return nil, err
		}
		target = username
	}

	profile, err := s.accountService.GetProfile(target)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ProfileResponse{Profile: toProfilePb(profile)}, nil
}

func (s *AccountServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile := repositories.Profile{
		FirstName: req.GetProfile().GetFirstName(),
		LastName:  req.GetProfile().GetLastName(),
		Bio:       req.GetProfile().GetBio(),
		Gender:    req.GetProfile().GetGender(),
	}
	if err := s.accountService.UpdateProfile(username, profile); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ProfileResponse{Profile: toProfilePb(profile)}, nil
}

func (s *AccountServer) GetConfig(ctx context.Context, _ *pb.GetConfigRequest) (*pb.ConfigResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	config, err := s.accountService.GetConfig(username)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ConfigResponse{Config: toConfigPb(config)}, nil
}

func (s *AccountServer) UpdateConfig(ctx context.Context, req *pb.UpdateConfigRequest) (*pb.ConfigResponse, error) {
	username, err := auth.UsernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	config := repositories.Config{
		Blocked:    req.GetConfig().GetBlocked(),
		ChatFilter: req.GetConfig().GetChatFilter(),
	}
	if err := s.accountService.UpdateConfig(username, config); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ConfigResponse{Config: toConfigPb(config)}, nil
}

func toProfilePb(profile repositories.Profile) *pb.UserProfile {
	return &pb.UserProfile{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Bio:       profile.Bio,
		Gender:    profile.Gender,
	}
}

func toConfigPb(config repositories.Config) *pb.UserConfig {
	return &pb.UserConfig{
		Blocked:    config.Blocked,
		ChatFilter: config.ChatFilter,
	}
}
