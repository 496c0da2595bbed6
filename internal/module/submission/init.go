package submission

import (
	"log/slog"

	"ajcc-portal/internal/global/logger"
)

var log *slog.Logger

type ModuleSubmission struct{}

func (m *ModuleSubmission) GetName() string {
	return "Submission"
}

func (m *ModuleSubmission) Init() {
	log = logger.New("Submission")
}
