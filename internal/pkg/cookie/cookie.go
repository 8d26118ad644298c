package cookie

import (
	"net/http"
	"time"

	"rv-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "rv_session"

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.CookieSameSite))

	c.SetCookie(
		SessionCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.CookieSameSite))

	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
