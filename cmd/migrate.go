package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/app"
)

type MigrateCmd struct {
	ConfigFile string `default:".recipes.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger := buildLogger(logConfig, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	application, err := app.New(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer application.Close()

	return application.Migrate(context.Background())
}
