package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesListSeeds() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The first call seeds the default category set
	assert.Len(suite.T(), response.Data, len(models.DefaultCategories))

	var hasDefault bool
	for _, category := range response.Data {
		if category.Name == models.DefaultCategoryName {
			hasDefault = category.IsDefault
		}
	}
	assert.True(suite.T(), hasDefault, "the fallback category is missing or not marked as default")
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	response := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Pets"})
	assert.Equal(suite.T(), "Pets", response.Data.Name)
	assert.False(suite.T(), response.Data.IsDefault)

	// Names are unique
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Pets"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"missing name", v1.CategoryEditable{}},
		{"broken body", `{ "name": 2 }`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRename() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   v1.Amount{Decimal: decimal.NewFromInt(10)},
		Category: "Food",
	})

	path := fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID)
	r := test.Request(suite.T(), http.MethodPatch, path, v1.CategoryEditable{Name: "Groceries"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)

	// The rename cascades to the transaction
	var transaction models.Transaction
	require.Nil(suite.T(), models.DB.First(&transaction).Error)
	assert.Equal(suite.T(), "Groceries", transaction.Category)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	// Seed so that the default category exists
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	var food, other v1.Category
	for _, category := range categories.Data {
		switch category.Name {
		case "Food":
			food = category
		case models.DefaultCategoryName:
			other = category
		}
	}

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   v1.Amount{Decimal: decimal.NewFromInt(10)},
		Category: "Food",
	})

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", food.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The transaction is reassigned to the default category
	var transaction models.Transaction
	require.Nil(suite.T(), models.DB.First(&transaction).Error)
	assert.Equal(suite.T(), models.DefaultCategoryName, transaction.Category)

	// The default category itself cannot be deleted
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", other.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategorySuggest() {
	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:        models.TransactionTypeExpense,
		Amount:      v1.Amount{Decimal: decimal.NewFromInt(42)},
		Category:    "Food",
		Description: "REWE Supermarkt",
	})

	tests := []struct {
		name        string
		description string
		category    string
		confidence  string
	}{
		{"exact match", "rewe supermarkt", "Food", models.ConfidenceHigh},
		{"glob match", "REWE Supermarkt Berlin 42", "Food", models.ConfidenceMedium},
		{"no match", "unknown merchant", "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories/suggest", v1.SuggestionRequest{Description: tt.description})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SuggestionResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.category, response.Data.SuggestedCategory)
			assert.Equal(t, tt.confidence, response.Data.Confidence)
		})
	}
}

func (suite *TestSuiteStandard) TestCategorySuggestInvalid() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories/suggest", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
