package result

import (
	"log/slog"

	"ajcc-portal/internal/global/logger"
)

var log *slog.Logger

type ModuleResult struct{}

func (m *ModuleResult) GetName() string {
	return "Result"
}

func (m *ModuleResult) Init() {
	log = logger.New("Result")
}
