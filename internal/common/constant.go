package common

// RequestIDHeaderName is the gRPC metadata key and HTTP header carrying the
// caller-supplied request id.
const RequestIDHeaderName = "x-request-id"

// DefaultAppPasswordApplication is the application class app passwords are
// scoped to when none is configured.
const DefaultAppPasswordApplication = "GITLAB"
