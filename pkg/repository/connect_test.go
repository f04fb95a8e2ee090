package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
)

type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger, TranslateError: true})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

// StoreSuite runs against a private in-memory sqlite database with foreign keys enforced.
type StoreSuite struct {
	suite.Suite
	repository *repository.Repository
}

func (suite *StoreSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver: configs.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Migrate(context.Background()))

	_, err = repo.AddUnits(context.Background(), model.DefaultUnits)
	suite.Require().NoError(err)

	suite.repository = repo
}

func (suite *StoreSuite) TearDownTest() {
	suite.repository.Close()
}

type FileStoreTestSuite struct {
	suite.Suite
	repository *repository.Repository
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

// SetupTest opens a plain file path, the way a configured sqlite database is given.
func (suite *FileStoreTestSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver: configs.DriverSQLite,
		Path:   filepath.Join(suite.T().TempDir(), "recipes.db"),
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Migrate(context.Background()))

	_, err = repo.AddUnits(context.Background(), model.DefaultUnits)
	suite.Require().NoError(err)

	suite.repository = repo
}

func (suite *FileStoreTestSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *FileStoreTestSuite) TestAddRecipeIngredient_RejectsDanglingReferences() {
	err := suite.repository.AddRecipeIngredient(context.Background(), &model.RecipeIngredient{
		RecipeID: 1, IngredientID: 2, UnitOfMeasure: "nope", Quantity: 1,
	})

	suite.ErrorIs(err, repository.ErrInvalidReference)

	var count int64

	suite.Require().NoError(suite.repository.DB.Model(&model.RecipeIngredient{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *FileStoreTestSuite) TestDeleteRecipe_CascadesAssociations() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddIngredient(ctx, &model.Ingredient{
		ID: 1, Name: "Salt", RefUnitOfMeasure: "g", RefQuantity: 1, Available: true,
	}))
	suite.Require().NoError(suite.repository.AddRecipe(ctx, &model.Recipe{ID: 10, Name: "Bread"}))
	suite.Require().NoError(suite.repository.AddRecipeIngredient(ctx, &model.RecipeIngredient{
		RecipeID: 10, IngredientID: 1, UnitOfMeasure: "g", Quantity: 5,
	}))

	_, err := suite.repository.DeleteRecipe(ctx, 10)
	suite.Require().NoError(err)

	_, err = suite.repository.GetRecipeIngredient(ctx, 10, 1)
	suite.ErrorIs(err, repository.ErrNotFound)
}
