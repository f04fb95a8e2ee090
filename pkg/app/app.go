// Package app holds the process-wide state shared by the commands: configuration, logger, store
// connection and the recipe service built on it.
package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/server"
)

type App struct {
	Config  *configs.Config
	Logger  *zap.Logger
	Repo    *repository.Repository
	Recipes *recipes.Service
}

// New connects to the configured store. Callers must Close the returned App.
func New(conf *configs.Config, logger *zap.Logger) (*App, error) {
	repo, err := repository.Open(conf, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  conf,
		Logger:  logger,
		Repo:    repo,
		Recipes: recipes.NewService(repo, logger),
	}, nil
}

func (a *App) Handler() http.Handler {
	return server.NewRouter(server.NewRecipeServer(a.Recipes, a.Logger), a.Logger)
}

// Migrate brings the schema up to date and seeds the default units of measure and conversions.
// Existing rows are left alone, so running it twice is harmless.
func (a *App) Migrate(ctx context.Context) error {
	if err := a.Repo.Migrate(ctx); err != nil {
		return err
	}

	units, err := a.Repo.AddUnits(ctx, model.DefaultUnits)
	if err != nil {
		return err
	}

	conversions, err := a.Repo.AddConversions(ctx, model.DefaultConversions)
	if err != nil {
		return err
	}

	a.Logger.Info("database migrated", zap.Int64("units_added", units), zap.Int64("conversions_added", conversions))

	return nil
}

func (a *App) Close() {
	a.Repo.Close()
}
