package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authbridge/internal/common"
	pb "github.com/dmitrijs2005/authbridge/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthBridgeClient
}

func withRequestID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		md.Set(common.RequestIDHeaderName, id)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// requestIDInterceptor tags each call with a fresh request id unless the
// caller already set one.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx, uuid.NewString()), method, req, reply, cc, opts...)
}

func NewAuthBridgeClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthBridgeClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) VerifyLogin(ctx context.Context, login, password, otp string) (*pb.VerifyLoginResponse, error) {
	resp, err := s.client.VerifyLogin(ctx, &pb.VerifyLoginRequest{Login: login, Password: password, Otp: otp})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CheckOTP(ctx context.Context, login, code string) (bool, error) {
	resp, err := s.client.CheckOTP(ctx, &pb.CheckOTPRequest{Login: login, Code: code})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Valid, nil
}

func (s *GRPCClient) CheckPassword(ctx context.Context, login, password string) (bool, error) {
	resp, err := s.client.CheckPassword(ctx, &pb.CheckPasswordRequest{Login: login, Password: password})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Valid, nil
}

func (s *GRPCClient) CheckAppPassword(ctx context.Context, login, password string) (bool, error) {
	resp, err := s.client.CheckAppPassword(ctx, &pb.CheckPasswordRequest{Login: login, Password: password})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Valid, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, login string) (*pb.ProfileResponse, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{Login: login})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrBadRequest, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
