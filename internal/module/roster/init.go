package roster

import (
	"log/slog"

	"ajcc-portal/internal/global/logger"
)

var log *slog.Logger

type ModuleRoster struct{}

func (m *ModuleRoster) GetName() string {
	return "Roster"
}

func (m *ModuleRoster) Init() {
	log = logger.New("Roster")
}
