package middleware

import (
	"strings"

	"ajcc-portal/internal/global/jwt"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/global/session"

	"github.com/gin-gonic/gin"
)

// Auth gates admin-only routes. The session token is read from the admin
// cookie (the browser flow) or a Bearer header (API clients), verified, and
// checked against the server-side session registry.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		claims, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !session.Valid(c.Request.Context(), claims) {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		c.Set("payload", claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(jwt.CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
