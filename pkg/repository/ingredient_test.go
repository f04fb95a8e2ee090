package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
)

type IngredientTestSuite struct {
	RepositorySuite
}

func TestIngredientTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientTestSuite))
}

func (suite *IngredientTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *IngredientTestSuite) TestGetRecipeIngredient_GetsEntry() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "recipe_ingredients" WHERE recipe_id = $1 AND ingredient_id = $2 LIMIT $3`)).
		WithArgs(int64(42), int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "ingredient_id", "unit_of_measure", "quantity"}).
			AddRow(42, 7, "kg", 2.0))

	entry, err := suite.repository.GetRecipeIngredient(context.Background(), 42, 7)

	suite.Require().NoError(err)
	suite.Equal(int64(42), entry.RecipeID)
	suite.Equal(int64(7), entry.IngredientID)
	suite.Equal("kg", entry.UnitOfMeasure)
	suite.InDelta(2.0, entry.Quantity, 0.001)
}

func (suite *IngredientTestSuite) TestGetRecipeIngredient_ReturnsNotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "recipe_ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}))

	entry, err := suite.repository.GetRecipeIngredient(context.Background(), 42, 7)

	suite.Nil(entry)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *IngredientTestSuite) TestUpdateRecipeIngredientFields_UpdatesGivenFields() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "recipe_ingredients" SET "quantity"=$1,"unit_of_measure"=$2 WHERE recipe_id = $3 AND ingredient_id = $4`)).
		WithArgs(2.5, "g", int64(42), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.UpdateRecipeIngredientFields(context.Background(), 42, 7,
		map[string]any{"quantity": 2.5, "unit_of_measure": "g"})

	suite.NoError(err)
}

func (suite *IngredientTestSuite) TestUpdateRecipeIngredientFields_RejectsNonPositiveQuantity() {
	err := suite.repository.UpdateRecipeIngredientFields(context.Background(), 42, 7, map[string]any{"quantity": -1.0})

	suite.ErrorIs(err, repository.ErrInvalidValue)
}

func (suite *IngredientTestSuite) TestDeleteRecipeIngredient_ReturnsCount() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_ingredients" WHERE recipe_id = $1 AND ingredient_id = $2`)).
		WithArgs(int64(42), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	count, err := suite.repository.DeleteRecipeIngredient(context.Background(), 42, 7)

	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *IngredientTestSuite) TestFindRecipesByIngredient_UsesSubquery() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "recipe" WHERE id IN \(SELECT "?recipe_id"? FROM "recipe_ingredients" WHERE ingredient_id = \$1\) ORDER BY name$`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Bread").
			AddRow(2, "Focaccia"))

	recipes, err := suite.repository.FindRecipesByIngredient(context.Background(), 7)

	suite.Require().NoError(err)
	suite.Require().Len(recipes, 2)
	suite.Equal("Bread", recipes[0].Name)
	suite.Equal("Focaccia", recipes[1].Name)
}

func (suite *IngredientTestSuite) TestAddIngredient_RejectsNegativePrice() {
	err := suite.repository.AddIngredient(context.Background(), &model.Ingredient{
		ID: 7, Name: "Saffron", RefUnitOfMeasure: "g", RefQuantity: 1, RefPrice: -3,
	})

	suite.ErrorIs(err, repository.ErrInvalidValue)
}

func (suite *IngredientTestSuite) TestAddIngredient_RejectsZeroRefQuantity() {
	err := suite.repository.AddIngredient(context.Background(), &model.Ingredient{
		ID: 7, Name: "Saffron", RefUnitOfMeasure: "g",
	})

	suite.ErrorIs(err, repository.ErrInvalidValue)
}

type IngredientStoreTestSuite struct {
	StoreSuite
}

func TestIngredientStoreTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientStoreTestSuite))
}

func (suite *IngredientStoreTestSuite) TestAddIngredient_RoundTrips() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddIngredient(ctx, &model.Ingredient{
		ID: 7, Name: "Olive Oil", Brand: pointy.String("Frantoio"), RefUnitOfMeasure: "l",
		RefQuantity: 1, RefPrice: 9.5, Available: true,
	}))

	ingredient, err := suite.repository.GetIngredient(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal("Olive Oil", ingredient.Name)
	suite.Equal("Frantoio", *ingredient.Brand)
	suite.Equal("l", ingredient.RefUnitOfMeasure)
	suite.InDelta(9.5, ingredient.RefPrice, 0.001)
	suite.True(ingredient.Available)
	suite.False(ingredient.CreatedAt.IsZero())
}

func (suite *IngredientStoreTestSuite) TestAddIngredient_RejectsDuplicateName() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddIngredient(ctx, &model.Ingredient{
		ID: 7, Name: "Salt", RefUnitOfMeasure: "g", RefQuantity: 1, Available: true,
	}))

	err := suite.repository.AddIngredient(ctx, &model.Ingredient{
		ID: 8, Name: "Salt", RefUnitOfMeasure: "g", RefQuantity: 1, Available: true,
	})

	suite.ErrorIs(err, repository.ErrDuplicate)
}

func (suite *IngredientStoreTestSuite) TestUpdateRecipeIngredientFields_ReturnsNotFound() {
	err := suite.repository.UpdateRecipeIngredientFields(context.Background(), 1, 2, map[string]any{"quantity": 1.0})

	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *IngredientStoreTestSuite) TestListIngredients_OrdersByName() {
	ctx := context.Background()

	for id, name := range map[int64]string{1: "Yeast", 2: "Flour", 3: "Water"} {
		suite.Require().NoError(suite.repository.AddIngredient(ctx, &model.Ingredient{
			ID: id, Name: name, RefUnitOfMeasure: "g", RefQuantity: 1, Available: true,
		}))
	}

	ingredients, err := suite.repository.ListIngredients(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(ingredients, 3)
	suite.Equal("Flour", ingredients[0].Name)
	suite.Equal("Water", ingredients[1].Name)
	suite.Equal("Yeast", ingredients[2].Name)
}
