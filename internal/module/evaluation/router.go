package evaluation

import (
	"ajcc-portal/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleEvaluation) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Auth())

	adminGroup.POST("/evaluate", Evaluate)
	adminGroup.GET("/export-results", ExportResults)
}
