package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"money-tracker/internal/dto"
	"money-tracker/internal/errors"
	"money-tracker/internal/models"
	"money-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	handler       *CategoryHandler
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockSuggester *service_mocks.MockCategorySuggesterInterface
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockSuggester = service_mocks.NewMockCategorySuggesterInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockSuggester)
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) list(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Require().NoError(s.handler.ListCategories(s.echo.NewContext(req, rec)))
	return rec
}

func (s *CategoryHandlerTestSuite) TestListCategories_All() {
	rec := s.list("/api/v1/categories")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.AllCategories(), response.Categories)
	s.Nil(response.Suggestion)
}

func (s *CategoryHandlerTestSuite) TestListCategories_ForType() {
	rec := s.list("/api/v1/categories?type=Income")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.TransactionTypeIncome, response.Type)
	s.Equal(models.IncomeCategories(), response.Categories)
}

func (s *CategoryHandlerTestSuite) TestListCategories_WithSuggestion() {
	s.mockSuggester.EXPECT().
		Suggest("Starbucks", models.TransactionTypeExpense).
		Return(models.CategorySuggestion{Category: models.CategoryFood, Confidence: 0.95, MatchedOn: "Starbucks"})

	rec := s.list("/api/v1/categories?type=Expense&title=%20Starbucks%20")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.ExpenseCategories(), response.Categories)
	s.Require().NotNil(response.Suggestion)
	s.Equal(models.CategoryFood, response.Suggestion.Category)
	s.Equal(0.95, response.Suggestion.Confidence)
}

func (s *CategoryHandlerTestSuite) TestListCategories_InvalidType() {
	rec := s.list("/api/v1/categories?type=Transfer")

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
}

func (s *CategoryHandlerTestSuite) TestListCategories_TitleWithoutType() {
	rec := s.list("/api/v1/categories?title=Starbucks")

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.ValidationRequiredField), response.Error.Code)
}
