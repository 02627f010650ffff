package logger

import (
	"go.uber.org/zap"
)

// NewNamed builds a zap logger for the given environment and attaches the
// service name to every entry.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
