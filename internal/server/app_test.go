package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	"github.com/dmitrijs2005/authbridge/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.GRPCAddress = "127.0.0.1:0"
	c.HTTPAddress = "127.0.0.1:0"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:" + filepath.Join(t.TempDir(), "identity.db") + "?_pragma=busy_timeout(5000)"
	c.Migrate = true
	return c
}

func TestNewApp_SQLiteWithLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	c := testConfig(t)
	c.RedisAddress = mr.Addr()

	ctx := context.Background()
	app, err := NewApp(ctx, c, logging.Nop{})
	require.NoError(t, err)
	require.NotNil(t, app.redis)

	require.NoError(t, app.service.Ping(ctx))

	ok, err := app.service.CheckPassword(ctx, "nobody@example.com", "pw")
	require.Error(t, err)
	assert.False(t, ok)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- app.Run(runCtx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	c := testConfig(t)
	c.DatabaseDriver = "oracle"

	_, err := NewApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
}

func TestRun_ListenFailureStopsApp(t *testing.T) {
	c := testConfig(t)
	c.GRPCAddress = "127.0.0.1:99999"
	c.HTTPAddress = ""

	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after listen failure")
	}
}

func TestNewRepositoryManager(t *testing.T) {
	_, err := newRepositoryManager("pgx")
	require.NoError(t, err)
	_, err = newRepositoryManager("sqlite")
	require.NoError(t, err)
	_, err = newRepositoryManager("mysql")
	require.Error(t, err)
}
