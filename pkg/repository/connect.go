package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnknownDriver    = errors.New("unknown database driver")
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dialector, err := dialectorFor(conf.DB)
	if err != nil {
		return nil, err
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DB.Driver == configs.DriverSQLite {
		// a shared-cache sqlite database only tolerates one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
		sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	}

	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

func dialectorFor(conf configs.DB) (gorm.Dialector, error) {
	switch conf.Driver {
	case configs.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

		return postgres.Open(dsn), nil
	case configs.DriverSQLite:
		return sqlite.Open(sqliteDSN(conf.Path)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off for every new connection
// unless the DSN asks for it.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + "_foreign_keys=on"
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(
		&model.UnitOfMeasure{}, &model.UnitConversion{},
		&model.Ingredient{}, &model.Recipe{}, &model.RecipeIngredient{})
}

// Transaction runs fn against a repository bound to a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) Transaction(ctx context.Context, fn func(tx RecipeRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx, Logger: r.Logger})
	})
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	default:
		return err
	}
}
