package models

import (
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/cryptox"
)

// TOTPDevice is a confirmed time-based OTP device row. LastT is the last
// accepted time counter, -1 when none was ever recorded.
type TOTPDevice struct {
	ID        int64
	UserID    int64
	KeyHex    string
	Step      int64
	T0        int64
	Digits    int
	Tolerance int
	Drift     int
	LastT     int64
}

// Params decodes the stored key and returns the generator parameters.
func (d *TOTPDevice) Params() (cryptox.TOTP, error) {
	key, err := hex.DecodeString(d.KeyHex)
	if err != nil {
		return cryptox.TOTP{}, fmt.Errorf("%w: totp key is not hex", common.ErrMalformedCredential)
	}
	p := cryptox.TOTP{
		Key:       key,
		Step:      d.Step,
		T0:        d.T0,
		Digits:    d.Digits,
		Tolerance: d.Tolerance,
		Drift:     d.Drift,
	}
	if err := p.Validate(); err != nil {
		return cryptox.TOTP{}, fmt.Errorf("%w: %v", common.ErrMalformedCredential, err)
	}
	return p, nil
}

// StaticToken is one single-use backup code of a static device.
type StaticToken struct {
	ID       int64
	DeviceID int64
}
