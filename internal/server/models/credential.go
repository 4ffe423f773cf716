// Package models defines the identity-store rows the bridge reads, decoded
// once at the repository boundary, and the results it hands to transports.
package models

// Credential is the primary login record of an active user.
type Credential struct {
	ID    int64
	Login string
	// PasswordEncoded is the composite "algorithm$iterations$salt$digest".
	PasswordEncoded string
}

// ProfileRecord carries the display fields of an active user.
type ProfileRecord struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

// AppPassword is an application-scoped alternate credential.
type AppPassword struct {
	Login       string
	Application string
	Salt        string
	Iterations  int
	Digest      string
}
