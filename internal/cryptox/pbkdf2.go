// Package cryptox holds the credential primitives of the bridge: PBKDF2
// password digests in the Django composite format and TOTP/HOTP codes.
// Everything here is pure; no I/O and no shared state.
package cryptox

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"hash"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// MaxIterations bounds the work a stored record can ask for. Records above
// it are treated as malformed rather than burning CPU for minutes.
const MaxIterations = 10_000_000

// MinDigestLength is the shortest stored digest, in bytes, that is ever
// compared. Shorter digests would match a fraction of wrong passwords.
const MinDigestLength = 16

var digestAlphabet = strings.NewReplacer("+", "-", "/", "_")

// VerifyPBKDF2 recomputes PBKDF2-HMAC-SHA256 over password and salt and
// compares it to the base64 expected digest in constant time.
//
// The output length follows the decoded expected digest, so digests of
// different lengths are handled uniformly. It never fails: a malformed
// digest, a digest shorter than MinDigestLength or a non-positive iteration
// count simply yields false.
func VerifyPBKDF2(password, salt string, iterations int, expectedDigest string) bool {
	return verifyPBKDF2(sha256.New, MinDigestLength, password, salt, iterations, expectedDigest)
}

func verifyPBKDF2(h func() hash.Hash, minLen int, password, salt string, iterations int, expectedDigest string) bool {
	if iterations <= 0 || iterations > MaxIterations {
		return false
	}
	expected, ok := DecodeDigest(expectedDigest)
	if !ok || len(expected) < minLen {
		return false
	}
	computed := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(expected), h)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

// DecodeDigest decodes a stored digest. Both the URL-safe and the standard
// base64 alphabets are accepted, padded or not.
func DecodeDigest(s string) ([]byte, bool) {
	normalized := digestAlphabet.Replace(s)
	if b, err := base64.URLEncoding.DecodeString(normalized); err == nil {
		return b, true
	}
	if b, err := base64.RawURLEncoding.DecodeString(normalized); err == nil {
		return b, true
	}
	return nil, false
}

// ValidDigest reports whether s decodes to at least minLen bytes.
func ValidDigest(s string, minLen int) bool {
	b, ok := DecodeDigest(s)
	return ok && len(b) >= minLen
}

// EncodeDigest is the inverse of DecodeDigest in the standard padded
// alphabet, which is what Django writes.
func EncodeDigest(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DerivePBKDF2 returns the raw PBKDF2-HMAC-SHA256 key.
func DerivePBKDF2(password, salt string, iterations, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha256.New)
}

var hashByAlgorithm = map[string]func() hash.Hash{
	AlgorithmPBKDF2SHA256: sha256.New,
	AlgorithmPBKDF2SHA1:   sha1.New,
}
