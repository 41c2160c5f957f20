package configs

import (
	"go.uber.org/zap"
)

// NewLogger builds the app logger writing to the configured log file, so the
// console stays clean for the operator UI.
func NewLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
