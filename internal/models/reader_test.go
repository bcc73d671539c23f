package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReaderTransactionsInRange() {
	for _, d := range []int{1, 15, 31} {
		suite.createTestTransaction(models.Transaction{
			Type:     models.TransactionTypeExpense,
			Amount:   decimal.NewFromInt(10),
			Category: "Food",
			Date:     time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC),
		})
	}
	suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	reader := models.NewReader(models.DB)

	// Both bounds are inclusive
	transactions, err := reader.TransactionsInRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), transactions, 3)

	// The time of day of the bounds does not matter
	transactions, err = reader.TransactionsInRange(
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC),
	)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), transactions, 1)
}

func (suite *TestSuiteStandard) TestReaderTransactionsInRangeForAccount() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})

	suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		AccountID: &account.ID,
	})
	suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(200),
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		AccountID: &other.ID,
	})

	reader := models.NewReader(models.DB)

	transactions, err := reader.TransactionsInRangeForAccount(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		account.ID,
	)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), transactions, 1)
	assert.True(suite.T(), transactions[0].Amount.Equal(decimal.NewFromInt(100)))

	// A deleted or unknown account is an error, not an empty list
	_, err = reader.TransactionsInRangeForAccount(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		uuid.New(),
	)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestReaderAccountBalances() {
	checking := suite.createTestAccount(models.Account{Balance: decimal.NewFromInt(1000)})
	credit := suite.createTestAccount(models.Account{Type: models.AccountTypeCredit, Balance: decimal.NewFromInt(-250)})

	balances, err := models.NewReader(models.DB).AccountBalances()
	require.Nil(suite.T(), err)

	require.Len(suite.T(), balances, 2)
	assert.True(suite.T(), balances[checking.ID].Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), balances[credit.ID].Equal(decimal.NewFromInt(-250)))
}

func (suite *TestSuiteStandard) TestReaderBudgetsInMonth() {
	month := types.NewMonth(2024, 1)
	suite.createTestBudget(models.Budget{Category: "Food", Month: month, Limit: decimal.NewFromInt(100)})
	suite.createTestBudget(models.Budget{Category: "Transport", Month: month, Limit: decimal.NewFromInt(50)})
	suite.createTestBudget(models.Budget{Category: "Food", Month: types.NewMonth(2024, 2), Limit: decimal.NewFromInt(120)})

	budgets, err := models.NewReader(models.DB).BudgetsInMonth(month)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), budgets, 2)
	assert.Equal(suite.T(), "Food", budgets[0].Category)
	assert.Equal(suite.T(), "Transport", budgets[1].Category)
}

func (suite *TestSuiteStandard) TestReaderManualIncome() {
	month := types.NewMonth(2024, 1)

	reader := models.NewReader(models.DB)

	// No override stored: not an error
	_, ok, err := reader.ManualIncome(month)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok)

	override := models.MonthlyIncome{Month: month, Amount: decimal.NewFromInt(2100)}
	require.Nil(suite.T(), override.Set(models.DB))

	amount, ok, err := reader.ManualIncome(month)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.True(suite.T(), amount.Equal(decimal.NewFromInt(2100)))
}
