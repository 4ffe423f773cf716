package cryptox

import (
	"encoding/base32"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rfcKey = []byte("12345678901234567890")

func TestHOTP_RFC4226Vectors(t *testing.T) {
	want := []int64{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}
	for counter, code := range want {
		got, err := HOTP(rfcKey, int64(counter), 6)
		require.NoError(t, err)
		assert.Equal(t, code, got, "counter %d", counter)
	}
}

func mustHOTP(t *testing.T, key []byte, counter int64, digits int) int64 {
	t.Helper()
	code, err := HOTP(key, counter, digits)
	require.NoError(t, err)
	return code
}

func TestHOTP_AgreesWithAuthenticatorValidation(t *testing.T) {
	secret := base32.StdEncoding.EncodeToString(scenarioDevice.Key)
	for _, digits := range []int{6, 8, 10} {
		code := mustHOTP(t, scenarioDevice.Key, 56666667, digits)
		ok, err := hotp.ValidateCustom(FormatCode(code, digits), 56666667, secret, hotp.ValidateOpts{
			Digits:    otp.Digits(digits),
			Algorithm: otp.AlgorithmSHA1,
		})
		require.NoError(t, err)
		assert.True(t, ok, "digits=%d", digits)
	}
}

func TestHOTP_NegativeCounter(t *testing.T) {
	_, err := HOTP(rfcKey, -1, 6)
	assert.Error(t, err)
}

func TestTOTP_RFC6238Vectors(t *testing.T) {
	dev := TOTP{Key: rfcKey, Step: 30, Digits: 8}
	tests := []struct {
		unix int64
		code string
	}{
		{59, "94287082"},
		{1111111109, "07081804"},
		{1111111111, "14050471"},
		{1234567890, "89005924"},
		{2000000000, "69279037"},
	}
	for _, tt := range tests {
		now := time.Unix(tt.unix, 0)
		codes, err := dev.ExpectedCodes(now)
		require.NoError(t, err)
		require.Len(t, codes, 1)
		assert.Equal(t, tt.code, FormatCode(codes[0].Code, 8))

		_, ok := dev.Match(tt.code, now)
		assert.True(t, ok, "code %s at %d", tt.code, tt.unix)
	}
}

// key 0x01..0x14, step 30, now = 1700000010 (counter 56666667).
var scenarioDevice = TOTP{
	Key:       []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	Step:      30,
	Digits:    6,
	Tolerance: 1,
}

var scenarioNow = time.Unix(1700000010, 0)

func TestTOTP_Match_DriftWindow(t *testing.T) {
	counter, ok := scenarioDevice.Match(FormatCode(mustHOTP(t, scenarioDevice.Key, scenarioDevice.Counter(scenarioNow.Add(-30*time.Second)), 6), 6), scenarioNow)
	require.True(t, ok, "code for now-30s must be accepted")
	assert.Equal(t, int64(56666666), counter)

	_, ok = scenarioDevice.Match("957349", scenarioNow)
	assert.True(t, ok)
	_, ok = scenarioDevice.Match("108174", scenarioNow)
	assert.True(t, ok)
	_, ok = scenarioDevice.Match("159343", scenarioNow)
	assert.True(t, ok)

	_, ok = scenarioDevice.Match("476283", scenarioNow)
	assert.False(t, ok, "code for now-90s must be rejected")
	_, ok = scenarioDevice.Match("300662", scenarioNow)
	assert.False(t, ok, "code for now+60s must be rejected")
}

func TestTOTP_Match_AnyTimeWithinToleranceAccepted(t *testing.T) {
	for _, tolerance := range []int{0, 1, 2, 3} {
		dev := scenarioDevice
		dev.Tolerance = tolerance
		for offset := -tolerance; offset <= tolerance; offset++ {
			at := scenarioNow.Add(time.Duration(offset) * 30 * time.Second)
			code := mustHOTP(t, dev.Key, dev.Counter(at), dev.Digits)
			_, ok := dev.Match(FormatCode(code, dev.Digits), scenarioNow)
			assert.True(t, ok, "tolerance=%d offset=%d", tolerance, offset)
		}
	}
}

func TestTOTP_Match_PersistedDriftShiftsWindow(t *testing.T) {
	dev := scenarioDevice
	dev.Tolerance = 0
	dev.Drift = -2

	_, ok := dev.Match("044492", scenarioNow)
	assert.True(t, ok)
	_, ok = dev.Match("108174", scenarioNow)
	assert.False(t, ok)
}

func TestTOTP_Match_ComparesAsIntegers(t *testing.T) {
	dev := scenarioDevice
	dev.Tolerance = 2

	for _, submitted := range []string{"044492", "44492", "0044492", " 044492 "} {
		_, ok := dev.Match(submitted, scenarioNow)
		assert.True(t, ok, "%q", submitted)
	}
}

func TestTOTP_Match_NonNumericIsNonMatch(t *testing.T) {
	for _, submitted := range []string{"", "ABC123", "12 34", "-108174", "+108174", "1e6", "99999999999999999999999"} {
		_, ok := scenarioDevice.Match(submitted, scenarioNow)
		assert.False(t, ok, "%q", submitted)
	}
}

func TestTOTP_Match_InvalidDevice(t *testing.T) {
	dev := scenarioDevice
	dev.Step = 0
	_, ok := dev.Match("108174", scenarioNow)
	assert.False(t, ok)
}

func TestTOTP_Counter_EpochOffsetAndNegativeTime(t *testing.T) {
	dev := TOTP{Key: rfcKey, Step: 30, T0: 60, Digits: 6}
	assert.Equal(t, int64(0), dev.Counter(time.Unix(60, 0)))
	assert.Equal(t, int64(1), dev.Counter(time.Unix(90, 0)))
	assert.Equal(t, int64(-1), dev.Counter(time.Unix(59, 0)))

	codes, err := dev.ExpectedCodes(time.Unix(0, 0))
	require.NoError(t, err)
	assert.Empty(t, codes, "negative counters are skipped")
}

func TestTOTP_Validate(t *testing.T) {
	assert.NoError(t, scenarioDevice.Validate())

	for name, mutate := range map[string]func(*TOTP){
		"empty key":          func(d *TOTP) { d.Key = nil },
		"zero step":          func(d *TOTP) { d.Step = 0 },
		"zero digits":        func(d *TOTP) { d.Digits = 0 },
		"too many digits":    func(d *TOTP) { d.Digits = 11 },
		"negative tolerance": func(d *TOTP) { d.Tolerance = -1 },
	} {
		dev := scenarioDevice
		mutate(&dev)
		assert.Error(t, dev.Validate(), name)
	}
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "000007", FormatCode(7, 6))
	assert.Equal(t, "123456", FormatCode(123456, 6))
	assert.Equal(t, "1234567", FormatCode(1234567, 6))
}
