package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("too many failed attempts")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
