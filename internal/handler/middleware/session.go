package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"support-console/internal/pkg/sessiontoken"
	"support-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

// SessionMiddleware resolves the bearer token into a live session. Tokens
// are correlation handles, not credentials: a valid token whose session was
// evicted gets a fresh session under the same id, so a stale tab recovers
// with default view state instead of a hard failure.
type SessionMiddleware struct {
	tokens   *sessiontoken.Service
	registry *session.Registry
}

func NewSessionMiddleware(tokens *sessiontoken.Service, registry *session.Registry) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, registry: registry}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, m.registry.Get(claims.SessionID))
		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

func SessionIDString(c *gin.Context) string {
	if s, ok := GetSession(c); ok {
		return s.ID.String()
	}
	return ""
}
