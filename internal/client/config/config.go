package config

import "time"

// Config holds runtime settings for the authbridge CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the bridge gRPC endpoint.
//   - Timeout: deadline for each call to the bridge.
type Config struct {
	ServerEndpointAddr string
	Timeout            time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Timeout = 10 * time.Second
}

// Load constructs a Config from defaults, then the JSON file named by
// -c/-config, then flags. It returns the arguments left after the flags,
// which name the command to run.
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, nil, err
	}
	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
