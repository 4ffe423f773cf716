package backupcodes

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

func (r *PostgresRepository) FindConfirmedDevice(ctx context.Context, userID int64) (int64, error) {
	query :=
		`SELECT id FROM otp_static_staticdevice
		 WHERE user_id = $1 AND confirmed = TRUE
		 ORDER BY id
		 LIMIT 1
		 `

	var id int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&id); err != nil {
		return 0, dbx.Classify(ctx, err)
	}
	return id, nil
}

func (r *PostgresRepository) FindCode(ctx context.Context, deviceID int64, code string) (*models.StaticToken, error) {
	query :=
		`SELECT id, device_id FROM otp_static_statictoken
		 WHERE device_id = $1 AND token = $2
		 LIMIT 1
		 `

	t := &models.StaticToken{}
	if err := r.db.QueryRowContext(ctx, query, deviceID, code).Scan(&t.ID, &t.DeviceID); err != nil {
		return nil, dbx.Classify(ctx, err)
	}
	return t, nil
}

func (r *PostgresRepository) Consume(ctx context.Context, token *models.StaticToken) (bool, error) {
	query :=
		`DELETE FROM otp_static_statictoken
		 WHERE id = $1 AND device_id = $2
		 `

	n, err := dbx.ExecAffected(ctx, r.db, query, token.ID, token.DeviceID)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
