package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	Path               string
	MaxIdleConnections int `default:"10"`
	MaxOpenConnections int `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"*"`
}

type Config struct {
	DB     DB
	Server Server
}

const envPrefix = "RECIPES" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var errs error

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Host is required for %s", ErrConfiguration, DriverPostgres))
		}

		if c.DB.Password == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Password is required for %s", ErrConfiguration, DriverPostgres))
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Path is required for %s", ErrConfiguration, DriverSQLite))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: unsupported DB.Driver %q", ErrConfiguration, c.DB.Driver))
	}

	return errs
}
