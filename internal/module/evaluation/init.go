package evaluation

import (
	"log/slog"

	"ajcc-portal/internal/global/logger"
)

var log *slog.Logger

type ModuleEvaluation struct{}

func (m *ModuleEvaluation) GetName() string {
	return "Evaluation"
}

func (m *ModuleEvaluation) Init() {
	log = logger.New("Evaluation")
}
