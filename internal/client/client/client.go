package client

import (
	"context"

	pb "github.com/dmitrijs2005/authbridge/internal/proto"
)

type Client interface {
	Close() error
	VerifyLogin(ctx context.Context, login, password, otp string) (*pb.VerifyLoginResponse, error)
	CheckOTP(ctx context.Context, login, code string) (bool, error)
	CheckPassword(ctx context.Context, login, password string) (bool, error)
	CheckAppPassword(ctx context.Context, login, password string) (bool, error)
	GetProfile(ctx context.Context, login string) (*pb.ProfileResponse, error)
	Ping(ctx context.Context) error
}
