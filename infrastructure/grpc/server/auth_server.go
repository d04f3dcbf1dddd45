package server

import (
	"context"
	"log/slog"

	"channel-lab/errors"
	pb "channel-lab/proto/account"
	"channel-lab/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
	log         *slog.Logger
}

func NewAuthServer(log *slog.Logger, authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService, log: log}
}

func (s *AuthServer) Register(_ context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.log.Info("user registered", "username", req.Username)
	return &pb.AuthResponse{Token: string(token), Username: req.Username}, nil
}

func (s *AuthServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Login(req.Username, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token), Username: req.Username}, nil
}
