package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/authbridge/internal/common"
)

const (
	AlgorithmPBKDF2SHA256 = "pbkdf2_sha256"
	AlgorithmPBKDF2SHA1   = "pbkdf2_sha1"

	// DefaultIterations matches the work factor of the identity store's
	// current hasher.
	DefaultIterations = 260000

	passwordSeparator = "$"
	saltAlphabet      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	saltLength        = 22
)

// EncodedPassword is the parsed form of "algorithm$iterations$salt$digest".
type EncodedPassword struct {
	Algorithm  string
	Iterations int
	Salt       string
	Digest     string
}

// ParseEncodedPassword splits a composite password into its four parts,
// bounded from the left. Any shape problem is reported as
// common.ErrMalformedCredential.
func ParseEncodedPassword(encoded string) (*EncodedPassword, error) {
	parts := strings.SplitN(encoded, passwordSeparator, 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", common.ErrMalformedCredential, len(parts))
	}

	algorithm, rawIterations, salt, digest := parts[0], parts[1], parts[2], parts[3]

	h, ok := hashByAlgorithm[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", common.ErrMalformedCredential, algorithm)
	}
	iterations, err := strconv.Atoi(rawIterations)
	if err != nil || iterations <= 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("%w: bad iteration count", common.ErrMalformedCredential)
	}
	if digest == "" {
		return nil, fmt.Errorf("%w: empty digest", common.ErrMalformedCredential)
	}
	// A composite digest is a full hash output.
	if !ValidDigest(digest, h().Size()) {
		return nil, fmt.Errorf("%w: digest shorter than %d bytes or not base64", common.ErrMalformedCredential, h().Size())
	}

	return &EncodedPassword{
		Algorithm:  algorithm,
		Iterations: iterations,
		Salt:       salt,
		Digest:     digest,
	}, nil
}

// Verify checks password against the parsed record in constant time.
func (p *EncodedPassword) Verify(password string) bool {
	h, ok := hashByAlgorithm[p.Algorithm]
	if !ok {
		return false
	}
	return verifyPBKDF2(h, h().Size(), password, p.Salt, p.Iterations, p.Digest)
}

// String renders the record back into its composite form.
func (p *EncodedPassword) String() string {
	return strings.Join([]string{p.Algorithm, strconv.Itoa(p.Iterations), p.Salt, p.Digest}, passwordSeparator)
}

// EncodePassword hashes password into a pbkdf2_sha256 composite string.
func EncodePassword(password, salt string, iterations int) string {
	key := DerivePBKDF2(password, salt, iterations, sha256.Size)
	p := EncodedPassword{
		Algorithm:  AlgorithmPBKDF2SHA256,
		Iterations: iterations,
		Salt:       salt,
		Digest:     EncodeDigest(key),
	}
	return p.String()
}

// NewSalt returns a random alphanumeric salt.
func NewSalt() (string, error) {
	var b strings.Builder
	b.Grow(saltLength)
	max := big.NewInt(int64(len(saltAlphabet)))
	for i := 0; i < saltLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(saltAlphabet[n.Int64()])
	}
	return b.String(), nil
}
