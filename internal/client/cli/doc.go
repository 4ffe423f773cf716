// Package cli implements authbridgectl, a small operator tool for the
// bridge: it runs a full login check against a running server, probes the
// individual checks, looks up profiles and hashes passwords in the
// identity store's composite format.
//
// Secrets are read from the terminal without echo and wiped after use.
package cli
