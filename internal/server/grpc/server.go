// Package grpc exposes the bridge over the AuthBridge gRPC service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/logging"
	pb "github.com/dmitrijs2005/authbridge/internal/proto"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"google.golang.org/grpc"
)

// AuthService is the bridge as seen by the transport.
type AuthService interface {
	CheckOTP(ctx context.Context, login, code string) (bool, error)
	CheckPassword(ctx context.Context, login, password string) (bool, error)
	CheckAppPassword(ctx context.Context, login, password string) (bool, error)
	GetProfile(ctx context.Context, login string) (*models.Profile, error)
	VerifyLogin(ctx context.Context, login, password, code string) (*models.Identity, string, error)
	Ping(ctx context.Context) error
}

type GRPCServer struct {
	pb.UnimplementedAuthBridgeServer
	address        string
	auth           AuthService
	logger         logging.Logger
	requestTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		auth:           as,
		requestTimeout: requestTimeout,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestInterceptor, s.validationInterceptor))
	pb.RegisterAuthBridgeServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
