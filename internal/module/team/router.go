package team

import (
	"github.com/gin-gonic/gin"
)

func (t *ModuleTeam) InitRouter(r *gin.RouterGroup) {
	teamGroup := r.Group("/teams")

	teamGroup.GET("", ListTeams)
	teamGroup.POST("", Register)
}
