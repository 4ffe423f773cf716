package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authbridge/internal/flagx"
	"github.com/dmitrijs2005/authbridge/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "3s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	Timeout            timex.Duration `json:"timeout"`
}

// parseJson overlays Config with values loaded from the file named by
// -c/-config. Keys missing from the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFrom(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		Timeout:            timex.Duration{Duration: cfg.Timeout},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.Timeout = jc.Timeout.Duration
	return nil
}
