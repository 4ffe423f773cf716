package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authbridge/internal/common"
	pb "github.com/dmitrijs2005/authbridge/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// checkResult turns a (valid, err) pair into a response. Authentication
// failures answer valid=false, exactly like a wrong secret.
func (s *GRPCServer) checkResult(ctx context.Context, what, login string, ok bool, err error) (*pb.CheckResponse, error) {
	if err != nil && !common.IsAuthFailure(err) {
		s.logger.Error(ctx, what+" failed", "login", login, "error", err)
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, what, "login", login, "valid", ok)
	return &pb.CheckResponse{Valid: ok}, nil
}

func (s *GRPCServer) CheckOTP(ctx context.Context, req *pb.CheckOTPRequest) (*pb.CheckResponse, error) {
	ok, err := s.auth.CheckOTP(ctx, req.GetLogin(), req.GetCode())
	return s.checkResult(ctx, "otp check", req.GetLogin(), ok, err)
}

func (s *GRPCServer) CheckPassword(ctx context.Context, req *pb.CheckPasswordRequest) (*pb.CheckResponse, error) {
	ok, err := s.auth.CheckPassword(ctx, req.GetLogin(), req.GetPassword())
	return s.checkResult(ctx, "password check", req.GetLogin(), ok, err)
}

func (s *GRPCServer) CheckAppPassword(ctx context.Context, req *pb.CheckPasswordRequest) (*pb.CheckResponse, error) {
	ok, err := s.auth.CheckAppPassword(ctx, req.GetLogin(), req.GetPassword())
	return s.checkResult(ctx, "app password check", req.GetLogin(), ok, err)
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	p, err := s.auth.GetProfile(ctx, req.GetLogin())
	if err != nil {
		if errors.Is(err, common.ErrNoSuchUser) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		s.logger.Error(ctx, "profile lookup failed", "login", req.GetLogin(), "error", err)
		return nil, toStatus(err)
	}

	return &pb.ProfileResponse{
		Id:       p.ID,
		State:    p.State,
		Email:    p.Email,
		Login:    p.Login,
		Name:     p.Name,
		Username: p.Username,
	}, nil
}

func (s *GRPCServer) VerifyLogin(ctx context.Context, req *pb.VerifyLoginRequest) (*pb.VerifyLoginResponse, error) {
	id, assertion, err := s.auth.VerifyLogin(ctx, req.GetLogin(), req.GetPassword(), req.GetOtp())
	if err != nil {
		if common.IsAuthFailure(err) {
			s.logger.Info(ctx, "login rejected", "login", req.GetLogin())
		} else {
			s.logger.Error(ctx, "login failed", "login", req.GetLogin(), "error", err)
		}
		return nil, toStatus(err)
	}

	return &pb.VerifyLoginResponse{UserId: id.UserID, Login: id.Login, Assertion: assertion}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	if err := s.auth.Ping(ctx); err != nil {
		s.logger.Error(ctx, "ping failed", "error", err)
		return nil, status.Error(codes.Unavailable, "identity store unavailable")
	}
	return &pb.PingResponse{Status: "OK"}, nil
}
