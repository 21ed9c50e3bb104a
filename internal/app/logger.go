package app

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"

	"go.uber.org/zap"
)

// NewLogger returns a production logger when APP_ENV=production and installs it globally.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
