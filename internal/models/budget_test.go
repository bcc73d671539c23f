package models_test

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"valid",
			models.Budget{Category: "Food", Month: types.NewMonth(2024, 1), Limit: decimal.NewFromInt(100)},
			nil,
		},
		{
			"missing category",
			models.Budget{Month: types.NewMonth(2024, 1), Limit: decimal.NewFromInt(100)},
			models.ErrBudgetCategoryRequired,
		},
		{
			"missing month",
			models.Budget{Category: "Food", Limit: decimal.NewFromInt(100)},
			models.ErrBudgetMonthRequired,
		},
		{
			"negative limit",
			models.Budget{Category: "Food", Month: types.NewMonth(2024, 1), Limit: decimal.NewFromInt(-1)},
			models.ErrAmountNegative,
		},
	}

	for _, tt := range tests {
		budget := tt.budget
		err := budget.Set(models.DB)
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestBudgetSetUpserts() {
	month := types.NewMonth(2024, 1)

	first := models.Budget{Category: "Food", Month: month, Limit: decimal.NewFromInt(100)}
	require.Nil(suite.T(), first.Set(models.DB))

	// Setting again replaces the limit instead of failing
	second := models.Budget{Category: "Food", Month: month, Limit: decimal.NewFromInt(250)}
	require.Nil(suite.T(), second.Set(models.DB))

	var budgets []models.Budget
	require.Nil(suite.T(), models.DB.Find(&budgets).Error)
	require.Len(suite.T(), budgets, 1)
	assert.True(suite.T(), budgets[0].Limit.Equal(decimal.NewFromInt(250)), "limit is %s", budgets[0].Limit)
}

func (suite *TestSuiteStandard) TestBudgetPerMonth() {
	// The same category can be budgeted in different months
	first := models.Budget{Category: "Food", Month: types.NewMonth(2024, 1), Limit: decimal.NewFromInt(100)}
	require.Nil(suite.T(), first.Set(models.DB))

	second := models.Budget{Category: "Food", Month: types.NewMonth(2024, 2), Limit: decimal.NewFromInt(120)}
	require.Nil(suite.T(), second.Set(models.DB))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Budget{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestMonthlyIncomeValidation() {
	missing := models.MonthlyIncome{Amount: decimal.NewFromInt(100)}
	assert.ErrorIs(suite.T(), missing.Set(models.DB), models.ErrBudgetMonthRequired)

	negative := models.MonthlyIncome{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(-1)}
	assert.ErrorIs(suite.T(), negative.Set(models.DB), models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestMonthlyIncomeSetUpserts() {
	month := types.NewMonth(2024, 1)

	first := models.MonthlyIncome{Month: month, Amount: decimal.NewFromInt(2000)}
	require.Nil(suite.T(), first.Set(models.DB))

	second := models.MonthlyIncome{Month: month, Amount: decimal.NewFromInt(2500)}
	require.Nil(suite.T(), second.Set(models.DB))

	var incomes []models.MonthlyIncome
	require.Nil(suite.T(), models.DB.Find(&incomes).Error)
	require.Len(suite.T(), incomes, 1)
	assert.True(suite.T(), incomes[0].Amount.Equal(decimal.NewFromInt(2500)), "amount is %s", incomes[0].Amount)
}
