package util

import "go.uber.org/zap"

func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if env == "production" {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}

// NewTestLogger is used where a component is constructed without the app
// environment, mainly unit tests.
func NewTestLogger() *zap.SugaredLogger {
	return zap.Must(zap.NewDevelopment()).Sugar()
}
