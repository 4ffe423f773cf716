package otpdevices

import (
	"context"

	"github.com/dmitrijs2005/authbridge/internal/server/models"
)

type Repository interface {
	// GetConfirmedTOTP returns the user's confirmed TOTP device, or
	// common.ErrorNotFound.
	GetConfirmedTOTP(ctx context.Context, userID int64) (*models.TOTPDevice, error)
	// AdvanceLastT records counter as the last accepted one. It reports
	// false when the stored value is already at or past counter.
	AdvanceLastT(ctx context.Context, deviceID, counter int64) (bool, error)
}
