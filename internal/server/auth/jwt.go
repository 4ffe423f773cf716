// Package auth signs and reads the HS256 tokens shared with the OAuth
// subsystem: identity assertions minted after a verified login, and the
// access tokens presented to the profile endpoint.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "authbridge"

// IdentityClaims asserts that Login passed the password and OTP checks.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Login  string `json:"login"`
}

// AccessClaims is the payload of an OAuth access token. RefreshExpiresAt is
// the expiry of the refresh grant the token was issued under.
type AccessClaims struct {
	jwt.RegisteredClaims
	Login            string           `json:"login"`
	RefreshExpiresAt *jwt.NumericDate `json:"refresh_exp,omitempty"`
}

// RefreshActive reports whether the refresh grant is still valid at now.
// Tokens without a refresh grant count as active.
func (c *AccessClaims) RefreshActive(now time.Time) bool {
	return c.RefreshExpiresAt == nil || now.Before(c.RefreshExpiresAt.Time)
}

func IssueIdentityAssertion(id models.Identity, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: id.UserID,
		Login:  id.Login,
	})

	return token.SignedString(secretKey)
}

func ParseIdentityAssertion(tokenString string, secretKey []byte, now time.Time) (*models.Identity, error) {
	claims := &IdentityClaims{}
	if err := parse(tokenString, claims, secretKey, now); err != nil {
		return nil, err
	}
	return &models.Identity{UserID: claims.UserID, Login: claims.Login}, nil
}

func GenerateAccessToken(login string, refreshExpiresAt time.Time, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Login: login,
	}
	if !refreshExpiresAt.IsZero() {
		claims.RefreshExpiresAt = jwt.NewNumericDate(refreshExpiresAt)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

func ParseAccessToken(tokenString string, secretKey []byte, now time.Time) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parse(tokenString, claims, secretKey, now); err != nil {
		return nil, err
	}
	if claims.Login == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secretKey []byte, now time.Time) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}

	return nil
}
