package backupcodes

import (
	"context"

	"github.com/dmitrijs2005/authbridge/internal/server/models"
)

// Repository locates and consumes single-use static backup codes.
type Repository interface {
	// FindConfirmedDevice returns the id of the user's confirmed static
	// device, or common.ErrorNotFound.
	FindConfirmedDevice(ctx context.Context, userID int64) (int64, error)
	// FindCode returns the token row matching code on deviceID, or
	// common.ErrorNotFound.
	FindCode(ctx context.Context, deviceID int64, code string) (*models.StaticToken, error)
	// Consume deletes the token. It reports false when another caller
	// deleted it first.
	Consume(ctx context.Context, token *models.StaticToken) (bool, error)
}
