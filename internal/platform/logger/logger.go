// Package logger builds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// New creates a logger appropriate for the given environment: human-readable
// development output, JSON in anything else.
func New(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNamed creates an environment-appropriate logger named after the service.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	log, err := New(appEnv)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
