package logger

import (
	"go.uber.org/zap"
)

// New builds the service logger. Development mode switches to the console
// encoder with human-readable output.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
