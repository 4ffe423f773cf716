package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authbridge/internal/flagx"
)

var knownFlags = []string{
	"-a", "-w", "-driver", "-d", "-q", "-rt", "-s", "-t", "-app",
	"-replay", "-r", "-m", "-cooldown", "-migrate", "-l",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string         gRPC bind address (e.g., ":50051")
//	-w string         HTTP bind address, empty to disable
//	-driver string    identity store driver: pgx or sqlite
//	-d string         identity store DSN
//	-q duration       per-query timeout
//	-rt duration      per-request deadline
//	-s string         HMAC secret shared with the OAuth subsystem
//	-t duration       identity assertion lifetime
//	-app string       app-password application class
//	-replay           enable TOTP replay protection
//	-r string         Redis address for the failed-OTP limiter
//	-m int            failed OTP attempts before cooldown
//	-cooldown duration
//	-migrate          apply the embedded identity schema
//	-l string         log level
//
// Args are filtered through flagx.FilterArgs first, so flags owned by other
// components (such as -c) do not fail the parse.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("authbridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.GRPCAddress, "a", config.GRPCAddress, "gRPC address")
	fs.StringVar(&config.HTTPAddress, "w", config.HTTPAddress, "HTTP address")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.QueryTimeout, "q", config.QueryTimeout, "query timeout")
	fs.DurationVar(&config.RequestTimeout, "rt", config.RequestTimeout, "request timeout")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AssertionTTL, "t", config.AssertionTTL, "identity assertion ttl")
	fs.StringVar(&config.AppPasswordApplication, "app", config.AppPasswordApplication, "app password application")
	fs.BoolVar(&config.TOTPReplayProtection, "replay", config.TOTPReplayProtection, "totp replay protection")
	fs.StringVar(&config.RedisAddress, "r", config.RedisAddress, "redis address")
	fs.IntVar(&config.MaxOTPAttempts, "m", config.MaxOTPAttempts, "max failed otp attempts")
	fs.DurationVar(&config.OTPCooldown, "cooldown", config.OTPCooldown, "otp cooldown")
	fs.BoolVar(&config.Migrate, "migrate", config.Migrate, "apply identity schema migrations")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
