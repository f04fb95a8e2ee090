package app_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/app"
)

type AppTestSuite struct {
	suite.Suite
	app    *app.App
	server *httptest.Server
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (suite *AppTestSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver: configs.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}}

	application, err := app.New(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	suite.Require().NoError(application.Migrate(context.Background()))

	suite.app = application
	suite.server = httptest.NewServer(application.Handler())
}

func (suite *AppTestSuite) TearDownTest() {
	suite.server.Close()
	suite.app.Close()
}

func (suite *AppTestSuite) do(method string, path string, body string) (int, string) {
	request, err := http.NewRequestWithContext(context.Background(), method, suite.server.URL+path, strings.NewReader(body))
	suite.Require().NoError(err)

	response, err := suite.server.Client().Do(request)
	suite.Require().NoError(err)

	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	suite.Require().NoError(err)

	return response.StatusCode, string(data)
}

func (suite *AppTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(suite.app.Migrate(context.Background()))

	units, err := suite.app.Repo.ListUnits(context.Background())
	suite.Require().NoError(err)
	suite.Len(units, 9)
}

func (suite *AppTestSuite) TestTomatoSoupOverHTTP() {
	status, body := suite.do(http.MethodPost, "/recipes/Tomato%20Soup",
		`{"method": "Simmer.", "ingredients": [{"name": "Tomato", "unit_of_measure": "kg", "quantity": 2}]}`)
	suite.Require().Equal(http.StatusCreated, status, body)

	status, body = suite.do(http.MethodGet, "/recipes/Tomato%20Soup", "")
	suite.Require().Equal(http.StatusOK, status, body)

	var recipe struct {
		ID          string           `json:"id"`
		Name        string           `json:"name"`
		Method      string           `json:"method"`
		Ingredients []map[string]any `json:"ingredients"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(body), &recipe))
	suite.Equal("Tomato Soup", recipe.Name)
	suite.Equal("Simmer.", recipe.Method)
	suite.NotEmpty(recipe.ID)
	suite.Equal([]map[string]any{{"ingredient": "Tomato", "quantity": 2.0, "unit_of_measure": "kg"}}, recipe.Ingredients)

	status, body = suite.do(http.MethodPut, "/recipes/Tomato%20Soup", `{"ingredients": [{"name": "Tomato", "delete": true}]}`)
	suite.Require().Equal(http.StatusOK, status, body)

	status, body = suite.do(http.MethodGet, "/recipes/Tomato%20Soup", "")
	suite.Require().Equal(http.StatusOK, status)
	suite.Contains(body, `"ingredients":[]`)

	status, body = suite.do(http.MethodPost, "/recipes/Tomato%20Soup", `{}`)
	suite.Equal(http.StatusConflict, status)
	suite.Contains(body, "already exists")
}

func (suite *AppTestSuite) TestRecipesByIngredientOverHTTP() {
	for _, name := range []string{"Bread", "Tomato%20Soup"} {
		status, body := suite.do(http.MethodPost, "/recipes/"+name, `{"ingredients": [{"name": "Salt", "unit_of_measure": "g", "quantity": 5}]}`)
		suite.Require().Equal(http.StatusCreated, status, body)
	}

	status, body := suite.do(http.MethodPost, "/recipes/Fruit%20Salad", `{"ingredients": [{"name": "Apple", "unit_of_measure": "pc", "quantity": 2}]}`)
	suite.Require().Equal(http.StatusCreated, status, body)

	status, body = suite.do(http.MethodGet, "/ingredients/Salt/recipes", "")
	suite.Require().Equal(http.StatusOK, status)

	var found []map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(body), &found))
	suite.Require().Len(found, 2)
	suite.Equal("Bread", found[0]["name"])
	suite.Equal("Tomato Soup", found[1]["name"])

	status, _ = suite.do(http.MethodDelete, "/recipes/Bread", "")
	suite.Require().Equal(http.StatusOK, status)

	_, body = suite.do(http.MethodGet, "/ingredients/Salt/recipes", "")
	suite.Require().NoError(json.Unmarshal([]byte(body), &found))
	suite.Len(found, 1)
}

func (suite *AppTestSuite) TestErrorStatusesOverHTTP() {
	status, _ := suite.do(http.MethodGet, "/recipes/Gazpacho", "")
	suite.Equal(http.StatusNotFound, status)

	status, body := suite.do(http.MethodPost, "/recipes/Bread", `{"ingredients": [{"name": "Flour", "unit_of_measure": "g"}]}`)
	suite.Equal(http.StatusBadRequest, status)
	suite.Contains(body, "ingredients[0].quantity is required")

	status, _ = suite.do(http.MethodDelete, "/recipes/Gazpacho", "")
	suite.Equal(http.StatusNotFound, status)
}

func (suite *AppTestSuite) TestNameWithPercentSignOverHTTP() {
	status, body := suite.do(http.MethodPost, "/recipes/100%25%20Rye", `{"ingredients": [{"name": "Rye Flour", "unit_of_measure": "g", "quantity": 500}]}`)
	suite.Require().Equal(http.StatusCreated, status, body)
	suite.Contains(body, `"name":"100% Rye"`)

	status, body = suite.do(http.MethodGet, "/recipes/Rye", "")
	suite.Require().Equal(http.StatusOK, status, body)
	suite.Contains(body, `"name":"100% Rye"`)
}
