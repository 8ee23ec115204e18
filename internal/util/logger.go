package util

import "go.uber.org/zap"

// NewLogger builds the service-wide sugared logger, named so multi-service
// log streams stay attributable. Production gets the JSON encoder, anything
// else the human-readable development config.
func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.Logger

	if env == "production" {
		logger = zap.Must(zap.NewProduction())
	} else {
		logger = zap.Must(zap.NewDevelopment())
	}

	return logger.Named("pidgen").Sugar()
}
