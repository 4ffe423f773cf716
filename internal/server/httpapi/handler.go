// Package httpapi serves the browser-facing login form endpoint and the
// GitLab-compatible profile endpoint used by OAuth clients.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"github.com/gin-gonic/gin"
)

// AuthService is the part of the bridge the HTTP endpoints use.
type AuthService interface {
	VerifyLogin(ctx context.Context, login, password, code string) (*models.Identity, string, error)
	GetProfile(ctx context.Context, login string) (*models.Profile, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      AuthService
	jwtSecret []byte
	logger    logging.Logger
	now       func() time.Time
}

func NewHandler(as AuthService, secretKey string, l logging.Logger) *Handler {
	return &Handler{auth: as, jwtSecret: []byte(secretKey), logger: l, now: time.Now}
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	OTP      string `form:"otp" json:"otp" binding:"required"`
}

// Login verifies username, password and otp and answers with the identity
// assertion for the OAuth subsystem.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "error_description": "username, password and otp are required."})
		return
	}

	ctx := c.Request.Context()
	id, assertion, err := h.auth.VerifyLogin(ctx, req.Username, req.Password, req.OTP)
	if err != nil {
		if !common.IsAuthFailure(err) {
			h.logger.Error(ctx, "login failed", "login", req.Username, "error", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":   id.UserID,
		"login":     id.Login,
		"assertion": assertion,
	})
}

// CurrentUser answers GET /api/v4/user for the bearer of an access token.
// The state turns inactive once the token's refresh grant has expired.
func (h *Handler) CurrentUser(c *gin.Context) {
	claims, ok := GetAccessClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "error_description": "Invalid access token."})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.auth.GetProfile(ctx, claims.Login)
	if err != nil {
		if errors.Is(err, common.ErrNoSuchUser) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "error_description": "User not found."})
			return
		}
		h.logger.Error(ctx, "profile lookup failed", "login", claims.Login, "error", err)
		respondError(c, err)
		return
	}

	if !claims.RefreshActive(h.now()) {
		profile.State = models.StateInactive
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.auth.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps bridge errors onto HTTP statuses. All authentication
// failures share one body.
func respondError(c *gin.Context, err error) {
	switch {
	case common.IsAuthFailure(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_grant", "error_description": "Authentication failed."})
	case errors.Is(err, common.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited", "error_description": "Too many failed attempts."})
	case common.IsStoreFailure(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily_unavailable", "error_description": "Identity store unavailable."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "error_description": "Internal error."})
	}
}
