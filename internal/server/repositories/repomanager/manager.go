package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authbridge/internal/dbx"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/apppasswords"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/backupcodes"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/otpdevices"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Credentials(db dbx.DBTX) credentials.Repository
	AppPasswords(db dbx.DBTX) apppasswords.Repository
	OTPDevices(db dbx.DBTX) otpdevices.Repository
	BackupCodes(db dbx.DBTX) backupcodes.Repository
}
