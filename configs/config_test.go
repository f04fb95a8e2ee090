package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"https://recipes.example.com"}, config.Server.AllowedOrigins)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsSQLiteFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/sqlite.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("recipes.db", config.DB.Path)
	suite.Empty(config.DB.Host)
	suite.Equal(8081, config.Server.Port)
	suite.Equal([]string{"*"}, config.Server.AllowedOrigins)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPES_DB_HOST", "test.local")
	suite.T().Setenv("RECIPES_DB_PORT", "1234")
	suite.T().Setenv("RECIPES_DB_USER", "testuser")
	suite.T().Setenv("RECIPES_DB_PASSWORD", "test123")
	suite.T().Setenv("RECIPES_DB_DATABASE", "testdb")
	suite.T().Setenv("RECIPES_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("RECIPES_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("RECIPES_SERVER_PORT", "666")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPES_DB_HOST", "env.local")
	suite.T().Setenv("RECIPES_DB_USER", "envuser")
	suite.T().Setenv("RECIPES_DB_PASSWORD", "env123")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingPostgresValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.EqualError(err, "configuration error: DB.Host is required for postgres; configuration error: DB.Password is required for postgres")
}

func (suite *ConfigTestSuite) TestGetConfig_MissingSQLitePath() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPES_DB_DRIVER", "sqlite")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "configuration error: DB.Path is required for sqlite")
}

func (suite *ConfigTestSuite) TestGetConfig_UnknownDriver() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPES_DB_DRIVER", "oracle")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `unsupported DB.Driver "oracle"`)
}
