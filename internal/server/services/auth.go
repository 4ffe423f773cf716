// Package services contains server-side business logic. This file implements
// AuthService, the bridge between login requests and the identity store:
// TOTP with backup-code fallback, composite and app-scoped password checks,
// profile lookup, and identity assertions for a fully verified login.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/cryptox"
	"github.com/dmitrijs2005/authbridge/internal/dbx"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	"github.com/dmitrijs2005/authbridge/internal/server/auth"
	"github.com/dmitrijs2005/authbridge/internal/server/config"
	"github.com/dmitrijs2005/authbridge/internal/server/limiter"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/repomanager"
)

// AuthService holds no per-user state: every check reads a fresh snapshot
// from the identity store through the gateway.
//
// Checks return (false, nil) for a wrong secret and (false, err) when the
// check could not be completed or must fail closed; common.IsAuthFailure
// tells the two error families apart.
type AuthService struct {
	gw               *dbx.Gateway
	repomanager      repomanager.RepositoryManager
	limiter          *limiter.AttemptLimiter
	log              logging.Logger
	jwtSecret        []byte
	assertionTTL     time.Duration
	application      string
	replayProtection bool
	now              func() time.Time
}

// NewAuthService constructs an AuthService. lim may be nil.
func NewAuthService(gw *dbx.Gateway, m repomanager.RepositoryManager, lim *limiter.AttemptLimiter, cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		gw:               gw,
		repomanager:      m,
		limiter:          lim,
		log:              log,
		jwtSecret:        []byte(cfg.SecretKey),
		assertionTTL:     cfg.AssertionTTL,
		application:      cfg.AppPasswordApplication,
		replayProtection: cfg.TOTPReplayProtection,
		now:              time.Now,
	}
}

// CheckOTP verifies code as a TOTP of the user's confirmed device and, when
// that fails, as one of the user's backup codes, consuming it.
func (s *AuthService) CheckOTP(ctx context.Context, login, code string) (bool, error) {
	reserved := true
	if err := s.limiter.Reserve(ctx, login); err != nil {
		if errors.Is(err, common.ErrRateLimited) {
			return false, err
		}
		reserved = false
		s.log.Warn(ctx, "attempt limiter unavailable", "login", login, "error", err)
	}

	ok, err := s.checkOTP(ctx, login, code)

	switch {
	case ok:
		if lerr := s.limiter.Reset(ctx, login); lerr != nil {
			s.log.Warn(ctx, "attempt limiter reset failed", "login", login, "error", lerr)
		}
	case err != nil && !common.IsAuthFailure(err) && reserved:
		// Store trouble is not the caller's failed attempt.
		if lerr := s.limiter.Release(ctx, login); lerr != nil {
			s.log.Warn(ctx, "attempt limiter release failed", "login", login, "error", lerr)
		}
	}

	return ok, err
}

func (s *AuthService) checkOTP(ctx context.Context, login, code string) (bool, error) {
	cred, err := s.activeCredential(ctx, login)
	if err != nil {
		return false, err
	}

	device, err := s.confirmedTOTP(ctx, cred.ID)
	if err != nil {
		return false, err
	}
	if device != nil {
		ok, err := s.matchTOTP(ctx, login, device, code)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return s.consumeBackupCode(ctx, cred.ID, code)
}

func (s *AuthService) confirmedTOTP(ctx context.Context, userID int64) (*models.TOTPDevice, error) {
	var device *models.TOTPDevice
	err := s.gw.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		device, err = s.repomanager.OTPDevices(conn).GetConfirmedTOTP(ctx, userID)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return device, err
}

// matchTOTP never fails on a bad submission or a bad device row; both are
// non-matches so the backup codes still get their turn.
func (s *AuthService) matchTOTP(ctx context.Context, login string, device *models.TOTPDevice, code string) (bool, error) {
	params, err := device.Params()
	if err != nil {
		s.log.Warn(ctx, "malformed totp device", "login", login, "device_id", device.ID, "error", err)
		return false, nil
	}

	counter, ok := params.Match(code, s.now())
	if !ok {
		return false, nil
	}
	if !s.replayProtection {
		return true, nil
	}

	if counter <= device.LastT {
		s.log.Info(ctx, "totp code replayed", "login", login, "device_id", device.ID)
		return false, nil
	}

	var advanced bool
	err = s.gw.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		advanced, err = s.repomanager.OTPDevices(conn).AdvanceLastT(ctx, device.ID, counter)
		return err
	})
	if err != nil {
		return false, err
	}
	if !advanced {
		s.log.Info(ctx, "totp code replayed concurrently", "login", login, "device_id", device.ID)
	}
	return advanced, nil
}

// consumeBackupCode looks the code up and deletes it in one transaction.
// A delete that touches no row means a concurrent request won the code.
func (s *AuthService) consumeBackupCode(ctx context.Context, userID int64, code string) (bool, error) {
	if code == "" {
		return false, nil
	}

	consumed := false
	err := s.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.BackupCodes(tx)

		deviceID, err := repo.FindConfirmedDevice(ctx, userID)
		if err != nil {
			return err
		}
		token, err := repo.FindCode(ctx, deviceID, code)
		if err != nil {
			return err
		}
		consumed, err = repo.Consume(ctx, token)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return consumed, nil
}

// CheckPassword verifies password against the user's composite password.
func (s *AuthService) CheckPassword(ctx context.Context, login, password string) (bool, error) {
	_, ok, err := s.verifyPassword(ctx, login, password)
	return ok, err
}

func (s *AuthService) verifyPassword(ctx context.Context, login, password string) (*models.Credential, bool, error) {
	cred, err := s.activeCredential(ctx, login)
	if err != nil {
		return nil, false, err
	}

	encoded, err := cryptox.ParseEncodedPassword(cred.PasswordEncoded)
	if err != nil {
		s.log.Warn(ctx, "malformed password record", "login", login, "error", err)
		return nil, false, err
	}

	return cred, encoded.Verify(password), nil
}

// CheckAppPassword verifies password against the user's active app password
// for the configured application class.
func (s *AuthService) CheckAppPassword(ctx context.Context, login, password string) (bool, error) {
	var entry *models.AppPassword
	err := s.gw.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		entry, err = s.repomanager.AppPasswords(conn).GetActive(ctx, login, s.application)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return false, common.ErrNoSuchCredential
	}
	if err != nil {
		return false, err
	}

	if entry.Iterations <= 0 || entry.Iterations > cryptox.MaxIterations {
		s.log.Warn(ctx, "malformed app password record", "login", login, "field", "iter")
		return false, fmt.Errorf("%w: bad iteration count", common.ErrMalformedCredential)
	}
	if !cryptox.ValidDigest(entry.Digest, cryptox.MinDigestLength) {
		s.log.Warn(ctx, "malformed app password record", "login", login, "field", "password")
		return false, fmt.Errorf("%w: digest too short or undecodable", common.ErrMalformedCredential)
	}

	return cryptox.VerifyPBKDF2(password, entry.Salt, entry.Iterations, entry.Digest), nil
}

// GetProfile returns the profile payload of an active user.
func (s *AuthService) GetProfile(ctx context.Context, login string) (*models.Profile, error) {
	var rec *models.ProfileRecord
	err := s.gw.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		rec, err = s.repomanager.Credentials(conn).GetActiveProfile(ctx, login)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrNoSuchUser
	}
	if err != nil {
		return nil, err
	}
	return models.NewProfile(rec), nil
}

// VerifyLogin runs the full login: the OTP first, since it is the
// time-sensitive factor, then the password. On success it returns the
// identity and a signed assertion for the OAuth subsystem. A wrong factor is
// reported as common.ErrorUnauthorized.
func (s *AuthService) VerifyLogin(ctx context.Context, login, password, code string) (*models.Identity, string, error) {
	ok, err := s.CheckOTP(ctx, login, code)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	cred, ok, err := s.verifyPassword(ctx, login, password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	id := &models.Identity{UserID: cred.ID, Login: cred.Login}
	assertion, err := auth.IssueIdentityAssertion(*id, s.jwtSecret, s.assertionTTL, s.now())
	if err != nil {
		return nil, "", fmt.Errorf("%w: sign assertion: %v", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "login verified", "login", login, "user_id", cred.ID)
	return id, assertion, nil
}

// Ping reports whether the identity store is reachable.
func (s *AuthService) Ping(ctx context.Context) error {
	return s.gw.Ping(ctx)
}

func (s *AuthService) activeCredential(ctx context.Context, login string) (*models.Credential, error) {
	var cred *models.Credential
	err := s.gw.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		cred, err = s.repomanager.Credentials(conn).GetActiveByLogin(ctx, login)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrNoSuchUser
	}
	if err != nil {
		return nil, err
	}
	return cred, nil
}
