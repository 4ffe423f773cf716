package credentials

import (
	"context"

	"github.com/dmitrijs2005/authbridge/internal/server/models"
)

// Repository reads the primary credential of active users. Both methods
// return common.ErrorNotFound when no active user has the login.
type Repository interface {
	GetActiveByLogin(ctx context.Context, login string) (*models.Credential, error)
	GetActiveProfile(ctx context.Context, login string) (*models.ProfileRecord, error)
}
