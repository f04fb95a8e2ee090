package schemaorg

import "go.uber.org/zap"

const IntegrationName = "schema_org"

type SchemaOrgIntegration struct {
	logger *zap.Logger
}

func NewSchemaOrgIntegration(logger *zap.Logger) *SchemaOrgIntegration {
	return &SchemaOrgIntegration{logger: logger}
}
