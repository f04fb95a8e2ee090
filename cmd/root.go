package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                                   help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations and seed units"`
	Import  ImportCmd  `cmd:"" help:"Import a recipe from a web page"`
}

// buildLogger lowers the level of logConfig to debug when asked to.
func buildLogger(logConfig zap.Config, debug bool) *zap.Logger {
	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := logConfig.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
