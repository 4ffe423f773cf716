package otpdevices

import (
	"context"

	"github.com/dmitrijs2005/authbridge/internal/dbx"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetConfirmedTOTP(ctx context.Context, userID int64) (*models.TOTPDevice, error) {
	query :=
		`SELECT id, user_id, key, step, t0, digits, tolerance, drift, last_t
		 FROM otp_totp_totpdevice
		 WHERE user_id = $1 AND confirmed = TRUE
		 ORDER BY id
		 LIMIT 1
		 `

	d := &models.TOTPDevice{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&d.ID, &d.UserID, &d.KeyHex, &d.Step, &d.T0, &d.Digits, &d.Tolerance, &d.Drift, &d.LastT)
	if err != nil {
		return nil, dbx.Classify(ctx, err)
	}

	return d, nil
}

func (r *PostgresRepository) AdvanceLastT(ctx context.Context, deviceID, counter int64) (bool, error) {
	query :=
		`UPDATE otp_totp_totpdevice SET last_t = $1
		 WHERE id = $2 AND last_t < $1
		 `

	n, err := dbx.ExecAffected(ctx, r.db, query, counter, deviceID)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
