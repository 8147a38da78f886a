package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context key under which the authenticated username is stored.
const ctxUsername = "username"

const (
	errTokenRequired = "Access token required"
	errTokenInvalid  = "Invalid or expired token"
)

// authenticateToken guards protected routes. A missing token is 401; a token
// that fails signature or expiry checks is 403. On success the decoded
// username is attached to the request context.
func (h *Handler) authenticateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		abortError(c, http.StatusUnauthorized, errTokenRequired)
		return
	}

	username, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		abortError(c, http.StatusForbidden, errTokenInvalid)
		return
	}

	c.Set(ctxUsername, username)
	c.Next()
}

// requestLog assigns each request an id, echoes it in X-Request-Id and logs
// one structured line per request.
func (h *Handler) requestLog(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Writer.Header().Set("X-Request-Id", requestID)
	c.Set("requestId", requestID)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	}
}
