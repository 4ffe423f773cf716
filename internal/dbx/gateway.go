package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
)

// Gateway hands out connection-scoped handles to the identity store. Every
// scope acquires its own connection, bounded by the configured timeout, and
// releases it on every exit path. Nothing is cached between scopes.
type Gateway struct {
	db      *sql.DB
	timeout time.Duration
}

// NewGateway wraps db. A non-positive timeout disables the per-call deadline
// (the caller's context still applies).
func NewGateway(db *sql.DB, timeout time.Duration) *Gateway {
	return &Gateway{db: db, timeout: timeout}
}

// DB exposes the pool for start-up tasks such as pinging or migrating.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

func (g *Gateway) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return conn, nil
}

// WithConn runs fn against a freshly acquired connection.
func (g *Gateway) WithConn(ctx context.Context, fn func(ctx context.Context, conn DBTX) error) error {
	ctx, cancel := g.scope(ctx)
	defer cancel()

	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// WithTx runs fn inside a transaction on a freshly acquired connection.
func (g *Gateway) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	ctx, cancel := g.scope(ctx)
	defer cancel()

	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return WithTx(ctx, conn, nil, fn)
}

// Ping checks that a connection can be acquired and answers.
func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := g.scope(ctx)
	defer cancel()

	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

// Classify maps a driver error from a single statement onto the store error
// taxonomy: no rows becomes common.ErrorNotFound, a lost connection or an
// expired deadline becomes common.ErrStoreUnavailable, anything else
// common.ErrQueryFailed. A nil error stays nil.
func Classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, ctx.Err())
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
	}
}

// ExecAffected runs a single parameterized statement and reports how many
// rows it touched.
func ExecAffected(ctx context.Context, db DBTX, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, Classify(ctx, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, Classify(ctx, err)
	}
	return n, nil
}
