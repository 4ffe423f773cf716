package models

import (
	"testing"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPDevice_Params(t *testing.T) {
	d := &TOTPDevice{KeyHex: "3132333435363738393031323334353637383930", Step: 30, Digits: 6, Tolerance: 1, Drift: -1}

	p, err := d.Params()
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), p.Key)
	assert.Equal(t, int64(30), p.Step)
	assert.Equal(t, -1, p.Drift)
}

func TestTOTPDevice_Params_Malformed(t *testing.T) {
	for name, d := range map[string]*TOTPDevice{
		"not hex":   {KeyHex: "zz", Step: 30, Digits: 6},
		"empty key": {KeyHex: "", Step: 30, Digits: 6},
		"zero step": {KeyHex: "3132", Step: 0, Digits: 6},
	} {
		_, err := d.Params()
		require.ErrorIs(t, err, common.ErrMalformedCredential, name)
	}
}

func TestNewProfile(t *testing.T) {
	p := NewProfile(&ProfileRecord{ID: 12, Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"})
	assert.Equal(t, &Profile{
		ID:       12,
		State:    StateActive,
		Email:    "ann@example.com",
		Login:    "ann@example.com",
		Name:     "Ann Lee",
		Username: "ann@example.com",
	}, p)

	p = NewProfile(&ProfileRecord{ID: 1, Email: "x@example.com", FirstName: "Solo"})
	assert.Equal(t, "Solo", p.Name)
}
