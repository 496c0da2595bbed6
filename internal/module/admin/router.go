package admin

import (
	"time"

	"ajcc-portal/internal/global/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func (a *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	// Seed and the settings read are public; everything else behind Auth.
	r.POST("/seed", Seed)

	adminGroup := r.Group("/admin")

	adminGroup.POST("/login", middleware.RateLimit(rate.Every(2*time.Second), 5), Login)
	adminGroup.GET("/settings", GetSettings)

	authed := adminGroup.Group("")
	authed.Use(middleware.Auth())
	authed.POST("/logout", Logout)
	authed.GET("/me", Me)
	authed.PUT("/credentials", UpdateCredentials)
	authed.PUT("/settings", UpdateSettings)
	authed.GET("/dashboard", Dashboard)
}
