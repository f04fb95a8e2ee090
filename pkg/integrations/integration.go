package integrations

import (
	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/integrations/schemaorg"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
)

// Integration finds a recipe published somewhere else and turns it into a draft the recipe
// service can create.
type Integration interface {
	FindRecipe(pageURL string) (*recipes.Draft, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == schemaorg.IntegrationName {
		return schemaorg.NewSchemaOrgIntegration(logger)
	}

	return nil
}
