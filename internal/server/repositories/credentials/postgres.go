package credentials

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

func (r *PostgresRepository) GetActiveByLogin(ctx context.Context, login string) (*models.Credential, error) {
	query :=
		`SELECT id, email, password FROM users_customuser
		 WHERE email = $1 AND is_active = TRUE
		 `

	c := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&c.ID, &c.Login, &c.PasswordEncoded)
	if err != nil {
		return nil, dbx.Classify(ctx, err)
	}

	return c, nil
}

func (r *PostgresRepository) GetActiveProfile(ctx context.Context, login string) (*models.ProfileRecord, error) {
	query :=
		`SELECT id, email, first_name, last_name FROM users_customuser
		 WHERE email = $1 AND is_active = TRUE
		 `

	p := &models.ProfileRecord{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&p.ID, &p.Email, &p.FirstName, &p.LastName)
	if err != nil {
		return nil, dbx.Classify(ctx, err)
	}

	return p, nil
}
