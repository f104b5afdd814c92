package logger

import (
	"strings"

	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for servers built in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a sugared logger for the given app environment. Local and test
// environments get the human readable development encoder, everything else
// logs JSON at info level.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(appEnv)) {
	case "local", "dev", "development", "test":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
