package result

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleResult) InitRouter(r *gin.RouterGroup) {
	resultGroup := r.Group("/results")

	resultGroup.GET("/:teamId", Lookup)
	resultGroup.GET("/:teamId/certificate", CertificateForMember)
}
