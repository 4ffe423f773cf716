package httpapi

import (
	"time"

	"github.com/dmitrijs2005/authbridge/internal/logging"
	"github.com/gin-gonic/gin"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(h *Handler, l logging.Logger, requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(l))
	r.Use(Timeout(requestTimeout))

	r.POST("/login", h.Login)
	r.GET("/healthz", h.Healthz)

	api := r.Group("/api/v4")
	{
		api.GET("/user", h.ValidateAccessToken, h.CurrentUser)
	}

	return r
}
