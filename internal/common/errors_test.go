package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"no such user", ErrNoSuchUser, true},
		{"wrapped no such credential", fmt.Errorf("app password: %w", ErrNoSuchCredential), true},
		{"malformed", ErrMalformedCredential, true},
		{"store unavailable", ErrStoreUnavailable, false},
		{"query failed", fmt.Errorf("%w: boom", ErrQueryFailed), false},
		{"other", errors.New("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthFailure(tt.err))
		})
	}
}

func TestIsStoreFailure(t *testing.T) {
	assert.True(t, IsStoreFailure(fmt.Errorf("%w: dial tcp", ErrStoreUnavailable)))
	assert.True(t, IsStoreFailure(fmt.Errorf("%w: syntax", ErrQueryFailed)))
	assert.False(t, IsStoreFailure(ErrNoSuchUser))
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("hunter22")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
	WipeByteArray(nil)
}
