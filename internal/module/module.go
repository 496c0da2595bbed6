package module

import (
	"ajcc-portal/internal/module/admin"
	"ajcc-portal/internal/module/evaluation"
	"ajcc-portal/internal/module/ping"
	"ajcc-portal/internal/module/result"
	"ajcc-portal/internal/module/roster"
	"ajcc-portal/internal/module/submission"
	"ajcc-portal/internal/module/team"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&admin.ModuleAdmin{},
		&team.ModuleTeam{},
		&roster.ModuleRoster{},
		&submission.ModuleSubmission{},
		&evaluation.ModuleEvaluation{},
		&result.ModuleResult{},
	})
}
