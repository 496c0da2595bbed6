package roster

import (
	"ajcc-portal/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleRoster) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Auth())

	adminGroup.POST("/import-students", ImportStudents)
}
