package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/session"
)

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password required")
	}

	s, err := h.auth.Login(middleware.SessionFrom(ctx), req.Email, req.Password)
	if err != nil {
		return nil, h.toStatus("login", err)
	}
	return &pb.LoginResponse{Token: s.Token, User: userToProto(s)}, nil
}

func (h *Handler) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	h.auth.Logout(middleware.SessionFrom(ctx))
	return &pb.LogoutResponse{}, nil
}

func (h *Handler) GetSession(ctx context.Context, _ *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	s := middleware.SessionFrom(ctx)
	return &pb.GetSessionResponse{Authenticated: s.Authenticated, User: userToProto(s)}, nil
}

func userToProto(s session.Session) *pb.User {
	if s.User == nil {
		return nil
	}
	return &pb.User{
		Id:       s.User.ID,
		Username: s.User.Username,
		Email:    s.User.Email,
		Role:     string(s.User.Role),
	}
}
