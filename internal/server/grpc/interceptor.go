package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	pb "github.com/dmitrijs2005/authbridge/internal/proto"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var validate = newValidator()

// newValidator carries the required-field rules of the request messages,
// which cannot hold struct tags themselves.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidationMapRules(map[string]string{"Login": "required"},
		&pb.CheckOTPRequest{}, &pb.CheckPasswordRequest{}, &pb.GetProfileRequest{})
	v.RegisterStructValidationMapRules(map[string]string{"Login": "required", "Password": "required", "Otp": "required"},
		&pb.VerifyLoginRequest{})
	return v
}

// requestInterceptor tags the call with a request id (the caller's, if it
// sent one), bounds it by the request timeout and logs its outcome.
func (s *GRPCServer) requestInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = logging.WithRequestID(ctx, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// validationInterceptor rejects requests that miss a required field.
func (s *GRPCServer) validationInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if err := validate.StructCtx(ctx, req); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); !ok {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	return handler(ctx, req)
}
