package apppasswords

import (
	"context"

	"github.com/dmitrijs2005/authbridge/internal/server/models"
)

type Repository interface {
	// GetActive returns the active app password of login for application,
	// or common.ErrorNotFound.
	GetActive(ctx context.Context, login, application string) (*models.AppPassword, error)
}
