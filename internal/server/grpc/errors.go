package grpc

import (
	"errors"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const msgAuthFailed = "authentication failed"

// toStatus maps bridge errors onto gRPC status codes. All authentication
// failures share one message so callers cannot tell an unknown user from a
// wrong secret.
func toStatus(err error) error {
	switch {
	case common.IsAuthFailure(err):
		return status.Error(codes.Unauthenticated, msgAuthFailed)
	case errors.Is(err, common.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "too many failed attempts")
	case common.IsStoreFailure(err):
		return status.Error(codes.Unavailable, "identity store unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
