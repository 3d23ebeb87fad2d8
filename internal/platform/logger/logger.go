package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the given environment.
func New(appEnv string) (*zap.Logger, error) {
	var cfg zap.Config
	if appEnv == "development" || appEnv == "test" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// NewNamed builds a logger and tags every entry with the service name.
func NewNamed(appEnv, service string) (*zap.Logger, error) {
	log, err := New(appEnv)
	if err != nil {
		return nil, err
	}
	return log.Named(service).With(zap.String("service", service)), nil
}
