package apppasswords

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

func (r *PostgresRepository) GetActive(ctx context.Context, login, application string) (*models.AppPassword, error) {
	query :=
		`SELECT username, application, salt, iter, password FROM users_apppasswords
		 WHERE username = $1 AND application = $2 AND active = TRUE
		 `

	p := &models.AppPassword{}
	err := r.db.QueryRowContext(ctx, query, login, application).
		Scan(&p.Login, &p.Application, &p.Salt, &p.Iterations, &p.Digest)
	if err != nil {
		return nil, dbx.Classify(ctx, err)
	}

	return p, nil
}
