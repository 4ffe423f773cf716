// Package client talks to the authbridge gRPC service.
//
// GRPCClient manages the connection, tags every call with a request id and
// maps gRPC status codes to sentinel errors (ErrUnavailable,
// ErrUnauthorized, ErrRateLimited, ErrNotFound, ErrBadRequest) that callers
// match with errors.Is.
package client
