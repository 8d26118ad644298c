package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rv-portal/internal/handler/httperr"
	"rv-portal/internal/pkg/cookie"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var ErrSessionRequired = errs.New("session required")

type SessionValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type SessionMiddleware struct {
	validator SessionValidator
}

const (
	ctxSessionEmailKey = "session_email"
	ctxClaimsKey       = "jwt_claims"
)

func NewSessionMiddleware(validator SessionValidator) *SessionMiddleware {
	return &SessionMiddleware{validator: validator}
}

// RequireSession accepts the session cookie or an Authorization bearer token.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrSessionRequired, "Verified session required", nil)
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil || !claims.Verified || claims.Email == "" {
			if err == nil {
				err = jwt.ErrInvalidToken
			}
			slog.Warn("session validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, ErrSessionRequired), "Invalid or expired session", nil)
			return
		}

		c.Set(ctxSessionEmailKey, claims.Email)
		c.Set(ctxClaimsKey, map[string]any{"email": claims.Email})
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSessionEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
