package config

import (
	"flag"
	"io"
)

// parseFlags populates Config from the leading command-line flags and
// returns the remaining positional arguments.
//
// Supported flags:
//
//	-a string     address and port of the bridge (default from Config)
//	-t duration   per-call timeout (default from Config)
//	-c string     JSON config file (read by parseJson)
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("authbridgectl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "per-call timeout")
	var configFile string
	fs.StringVar(&configFile, "c", "", "config file")
	fs.StringVar(&configFile, "config", "", "config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}
