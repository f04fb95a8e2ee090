package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/app"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/integrations"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/integrations/schemaorg"
)

type ImportCmd struct {
	ConfigFile string `default:".recipes.toml" help:"Path to config file"                     short:"c"`
	Name       string `help:"Store the recipe under this name instead of the page's"`
	URL        string `arg:""                  help:"Page publishing a schema.org Recipe"`
}

func (i *ImportCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger := buildLogger(logConfig, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
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

	draft, err := integrations.GetIntegration(schemaorg.IntegrationName, logger).FindRecipe(i.URL)
	if err != nil {
		return err
	}

	if i.Name != "" {
		draft.Name = i.Name
	}

	for _, text := range draft.Skipped {
		logger.Warn("ingredient not imported", zap.String("text", text))
	}

	view, err := application.Recipes.Create(context.Background(), draft.Name, draft.Attrs, draft.Lines)
	if err != nil {
		return fmt.Errorf("importing %q: %w", draft.Name, err)
	}

	logger.Info("recipe imported", zap.String("recipe", view.Name), zap.Int("ingredients", len(view.Ingredients)))

	return nil
}
