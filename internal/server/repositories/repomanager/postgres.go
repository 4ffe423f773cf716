// Package repomanager provides a concrete RepositoryManager for the identity
// store, wiring together repository constructors and the development schema
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authbridge/internal/dbx"
	"github.com/dmitrijs2005/authbridge/internal/server/migrations"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/apppasswords"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/backupcodes"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/otpdevices"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// PostgresRepositoryManager vends repository implementations bound to a
// DBTX. The queries use $n placeholders only, so the same repositories run
// against the embedded SQLite driver; dialect only affects migrations.
type PostgresRepositoryManager struct {
	dialect string
}

// Credentials returns a credentials.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewPostgresRepository(db)
}

// AppPasswords returns an apppasswords.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) AppPasswords(db dbx.DBTX) apppasswords.Repository {
	return apppasswords.NewPostgresRepository(db)
}

// OTPDevices returns an otpdevices.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) OTPDevices(db dbx.DBTX) otpdevices.Repository {
	return otpdevices.NewPostgresRepository(db)
}

// BackupCodes returns a backupcodes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) BackupCodes(db dbx.DBTX) backupcodes.Repository {
	return backupcodes.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{dialect: DialectPostgres}
}

// NewSQLiteRepositoryManager constructs a RepositoryManager for an embedded
// SQLite store, used by tests and local development.
func NewSQLiteRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{dialect: DialectSQLite}
}
