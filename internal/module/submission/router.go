package submission

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleSubmission) InitRouter(r *gin.RouterGroup) {
	submissionGroup := r.Group("/submissions")

	submissionGroup.GET("", ListSubmissions)
	submissionGroup.POST("", CreateSubmission)
}
