package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authbridge/internal/flagx"
	"github.com/dmitrijs2005/authbridge/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
type JsonConfig struct {
	GRPCAddress            string         `json:"grpc_address"`
	HTTPAddress            string         `json:"http_address"`
	DatabaseDriver         string         `json:"database_driver"`
	DatabaseDSN            string         `json:"database_dsn"`
	QueryTimeout           timex.Duration `json:"query_timeout"`
	RequestTimeout         timex.Duration `json:"request_timeout"`
	SecretKey              string         `json:"secret_key"`
	AssertionTTL           timex.Duration `json:"assertion_ttl"`
	AppPasswordApplication string         `json:"app_password_application"`
	TOTPReplayProtection   bool           `json:"totp_replay_protection"`
	RedisAddress           string         `json:"redis_address"`
	MaxOTPAttempts         int            `json:"max_otp_attempts"`
	OTPCooldown            timex.Duration `json:"otp_cooldown"`
	Migrate                bool           `json:"migrate"`
	LogLevel               string         `json:"log_level"`
}

// parseJson overlays the JSON file named by -c/-config onto config. Keys
// missing from the file keep their current values; no flag means no file.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFrom(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		GRPCAddress:            config.GRPCAddress,
		HTTPAddress:            config.HTTPAddress,
		DatabaseDriver:         config.DatabaseDriver,
		DatabaseDSN:            config.DatabaseDSN,
		QueryTimeout:           timex.Duration{Duration: config.QueryTimeout},
		RequestTimeout:         timex.Duration{Duration: config.RequestTimeout},
		SecretKey:              config.SecretKey,
		AssertionTTL:           timex.Duration{Duration: config.AssertionTTL},
		AppPasswordApplication: config.AppPasswordApplication,
		TOTPReplayProtection:   config.TOTPReplayProtection,
		RedisAddress:           config.RedisAddress,
		MaxOTPAttempts:         config.MaxOTPAttempts,
		OTPCooldown:            timex.Duration{Duration: config.OTPCooldown},
		Migrate:                config.Migrate,
		LogLevel:               config.LogLevel,
	}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	config.GRPCAddress = c.GRPCAddress
	config.HTTPAddress = c.HTTPAddress
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.QueryTimeout = c.QueryTimeout.Duration
	config.RequestTimeout = c.RequestTimeout.Duration
	config.SecretKey = c.SecretKey
	config.AssertionTTL = c.AssertionTTL.Duration
	config.AppPasswordApplication = c.AppPasswordApplication
	config.TOTPReplayProtection = c.TOTPReplayProtection
	config.RedisAddress = c.RedisAddress
	config.MaxOTPAttempts = c.MaxOTPAttempts
	config.OTPCooldown = c.OTPCooldown.Duration
	config.Migrate = c.Migrate
	config.LogLevel = c.LogLevel
	return nil
}
