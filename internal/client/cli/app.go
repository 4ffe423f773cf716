package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authbridge/internal/client/client"
	"github.com/dmitrijs2005/authbridge/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp connects to the bridge named in c. The connection is lazy: nothing
// is dialled until the first call.
func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthBridgeClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

// Close releases the connection to the bridge.
func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.Timeout)
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "check":
		err = a.check(ctx)
	case "otp":
		err = a.checkOTP(ctx)
	case "password":
		err = a.checkPassword(ctx, false)
	case "app-password":
		err = a.checkPassword(ctx, true)
	case "profile":
		err = a.profile(ctx, rest)
	case "ping":
		err = a.ping(ctx)
	case "hash":
		err = a.hash(rest)
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		a.usage()
		return 2
	}

	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: authbridgectl [-a host:port] [-t timeout] [-c config.json] <command>")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  check          verify login, password and one-time code")
	fmt.Fprintln(a.out, "  otp            check a one-time code or backup code")
	fmt.Fprintln(a.out, "  password       check an account password")
	fmt.Fprintln(a.out, "  app-password   check an application password")
	fmt.Fprintln(a.out, "  profile LOGIN  show the profile served to OAuth clients")
	fmt.Fprintln(a.out, "  ping           check that the bridge and its store are up")
	fmt.Fprintln(a.out, "  hash [ITER]    hash a password for the identity store")
}
