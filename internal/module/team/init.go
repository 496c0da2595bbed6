package team

import (
	"log/slog"

	"ajcc-portal/internal/global/logger"
)

var log *slog.Logger

type ModuleTeam struct{}

func (t *ModuleTeam) GetName() string {
	return "Team"
}

func (t *ModuleTeam) Init() {
	log = logger.New("Team")
}
