package jwt

import (
	"net/http"

	"ajcc-portal/config"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed admin token.
const CookieName = "admin_token"

// SetAuthCookie attaches the session cookie to the response. HTTP-only,
// SameSite=Lax, secure in release mode.
func SetAuthCookie(c *gin.Context, token string) {
	cfg := config.Get()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(cfg.JWT.Expire), "/", cfg.Domain, cfg.Mode == config.ModeRelease, true)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context) {
	cfg := config.Get()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", cfg.Domain, cfg.Mode == config.ModeRelease, true)
}
