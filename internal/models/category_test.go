package models_test

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	category := models.Category{Name: "   "}

	err := models.DB.Create(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameRequired)
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	suite.createTestCategory(models.Category{Name: "Food"})

	duplicate := models.Category{Name: "Food"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestSeedCategories() {
	require.Nil(suite.T(), models.SeedCategories(models.DB))

	var categories []models.Category
	require.Nil(suite.T(), models.DB.Find(&categories).Error)
	assert.Len(suite.T(), categories, len(models.DefaultCategories))

	var other models.Category
	require.Nil(suite.T(), models.DB.First(&other, "name = ?", models.DefaultCategoryName).Error)
	assert.True(suite.T(), other.IsDefault)

	// Seeding is skipped once categories exist
	require.Nil(suite.T(), models.SeedCategories(models.DB))
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(len(models.DefaultCategories)), count)
}

func (suite *TestSuiteStandard) TestCategoryRenameCascades() {
	category := suite.createTestCategory(models.Category{Name: "Food"})

	suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})
	suite.createTestBudget(models.Budget{
		Category: "Food",
		Month:    types.NewMonth(2024, 1),
		Limit:    decimal.NewFromInt(100),
	})
	require.Nil(suite.T(), models.LearnMapping(models.DB, "rewe", "Food"))

	require.Nil(suite.T(), category.Rename(models.DB, "Groceries"))

	var transaction models.Transaction
	require.Nil(suite.T(), models.DB.First(&transaction).Error)
	assert.Equal(suite.T(), "Groceries", transaction.Category)

	var budget models.Budget
	require.Nil(suite.T(), models.DB.First(&budget).Error)
	assert.Equal(suite.T(), "Groceries", budget.Category)

	var mapping models.CategoryMapping
	require.Nil(suite.T(), models.DB.First(&mapping).Error)
	assert.Equal(suite.T(), "Groceries", mapping.Category)
}

func (suite *TestSuiteStandard) TestCategoryDeleteReassigns() {
	require.Nil(suite.T(), models.SeedCategories(models.DB))

	var food models.Category
	require.Nil(suite.T(), models.DB.First(&food, "name = ?", "Food").Error)

	suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	require.Nil(suite.T(), food.Delete(models.DB))

	// The transaction survives, reassigned to the default category
	var transaction models.Transaction
	require.Nil(suite.T(), models.DB.First(&transaction).Error)
	assert.Equal(suite.T(), models.DefaultCategoryName, transaction.Category)

	// The name can be reused immediately
	suite.createTestCategory(models.Category{Name: "Food"})
}

func (suite *TestSuiteStandard) TestCategoryDeleteDropsCollidingBudgets() {
	require.Nil(suite.T(), models.SeedCategories(models.DB))

	var food models.Category
	require.Nil(suite.T(), models.DB.First(&food, "name = ?", "Food").Error)

	month := types.NewMonth(2024, 1)
	suite.createTestBudget(models.Budget{Category: "Food", Month: month, Limit: decimal.NewFromInt(100)})
	suite.createTestBudget(models.Budget{Category: models.DefaultCategoryName, Month: month, Limit: decimal.NewFromInt(50)})

	require.Nil(suite.T(), food.Delete(models.DB))

	// The existing budget of the default category wins over the
	// reassigned one
	var budgets []models.Budget
	require.Nil(suite.T(), models.DB.Find(&budgets).Error)
	require.Len(suite.T(), budgets, 1)
	assert.Equal(suite.T(), models.DefaultCategoryName, budgets[0].Category)
	assert.True(suite.T(), budgets[0].Limit.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestCategoryDeleteDefaultFails() {
	require.Nil(suite.T(), models.SeedCategories(models.DB))

	var other models.Category
	require.Nil(suite.T(), models.DB.First(&other, "name = ?", models.DefaultCategoryName).Error)

	assert.ErrorIs(suite.T(), other.Delete(models.DB), models.ErrCategoryIsDefault)
}
