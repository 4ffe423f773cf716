package cryptox

import (
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

const maxDigits = 10

// TOTP describes one time-based device: shared key, time step, epoch
// offset, code length, accepted window (Tolerance, in steps on either side)
// and the persisted Drift that shifts the centre of that window.
type TOTP struct {
	Key       []byte
	Step      int64
	T0        int64
	Digits    int
	Tolerance int
	Drift     int
}

// WindowCode is the code expected for one counter of the window.
type WindowCode struct {
	Counter int64
	Code    int64
}

// Validate reports whether the device parameters can produce codes.
func (t TOTP) Validate() error {
	switch {
	case len(t.Key) == 0:
		return errors.New("empty totp key")
	case t.Step <= 0:
		return errors.New("totp step must be positive")
	case t.Digits <= 0 || t.Digits > maxDigits:
		return errors.New("totp digits out of range")
	case t.Tolerance < 0:
		return errors.New("totp tolerance must not be negative")
	}
	return nil
}

// Counter is floor((now - T0) / Step), shifted by the persisted drift.
func (t TOTP) Counter(now time.Time) int64 {
	elapsed := now.Unix() - t.T0
	c := elapsed / t.Step
	if elapsed%t.Step != 0 && elapsed < 0 {
		c--
	}
	return c + int64(t.Drift)
}

// ExpectedCodes returns the codes accepted at now: one per counter in
// [c - Tolerance, c + Tolerance]. Negative counters are skipped.
func (t TOTP) ExpectedCodes(now time.Time) ([]WindowCode, error) {
	c := t.Counter(now)
	codes := make([]WindowCode, 0, 2*t.Tolerance+1)
	for offset := -t.Tolerance; offset <= t.Tolerance; offset++ {
		counter := c + int64(offset)
		if counter < 0 {
			continue
		}
		code, err := HOTP(t.Key, counter, t.Digits)
		if err != nil {
			return nil, err
		}
		codes = append(codes, WindowCode{Counter: counter, Code: code})
	}
	return codes, nil
}

// Match compares submitted against every code of the window without
// stopping at the first hit, and returns the earliest matching counter.
//
// submitted is read as a decimal integer, so "007" and "7" are the same
// code; padding is the generator's job. Anything that is not a non-negative
// integer is a plain non-match.
func (t TOTP) Match(submitted string, now time.Time) (int64, bool) {
	value, ok := ParseCode(submitted)
	if !ok || t.Validate() != nil {
		return 0, false
	}

	codes, err := t.ExpectedCodes(now)
	if err != nil {
		return 0, false
	}

	var (
		matched int64
		found   int
	)
	for _, wc := range codes {
		eq := subtle.ConstantTimeEq(int32(wc.Code>>32), int32(value>>32)) &
			subtle.ConstantTimeEq(int32(wc.Code), int32(value))
		if eq == 1 && found == 0 {
			matched = wc.Counter
		}
		found |= eq
	}
	return matched, found == 1
}

// ParseCode reads a submitted OTP as a non-negative decimal integer.
func ParseCode(submitted string) (int64, bool) {
	s := strings.TrimSpace(submitted)
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// HOTP is the RFC 4226 HMAC-SHA1 code for counter, truncated to digits
// decimal digits.
func HOTP(key []byte, counter int64, digits int) (int64, error) {
	if counter < 0 {
		return 0, errors.New("hotp counter must not be negative")
	}
	code, err := hotp.GenerateCodeCustom(base32.StdEncoding.EncodeToString(key), uint64(counter), hotp.ValidateOpts{
		Digits:    otp.Digits(digits),
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return 0, fmt.Errorf("hotp: %w", err)
	}
	return strconv.ParseInt(code, 10, 64)
}

// FormatCode left-pads code to digits characters.
func FormatCode(code int64, digits int) string {
	s := strconv.FormatInt(code, 10)
	if len(s) >= digits {
		return s
	}
	return strings.Repeat("0", digits-len(s)) + s
}
