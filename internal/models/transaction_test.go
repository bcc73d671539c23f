package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"valid expense",
			models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(12.34), Category: "Food"},
			nil,
		},
		{
			"valid income",
			models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(2000)},
			nil,
		},
		{
			"unknown type",
			models.Transaction{Type: "transfer", Amount: decimal.NewFromInt(1)},
			models.ErrTransactionTypeInvalid,
		},
		{
			"negative amount",
			models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-5), Category: "Food"},
			models.ErrAmountNegative,
		},
		{
			"expense without category",
			models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(5)},
			models.ErrExpenseCategoryRequired,
		},
		{
			"income with category",
			models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5), Category: "Food"},
			models.ErrIncomeCategoryNotAllowed,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmountIsInvalidAmount() {
	transaction := models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(-1),
		Category: "Food",
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestTransactionDateTruncated() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     time.Date(2024, 1, 15, 13, 37, 42, 0, time.FixedZone("CET", 3600)),
	})

	assert.Equal(suite.T(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(100),
	})

	now := time.Now().In(time.UTC)
	assert.Equal(suite.T(), time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(10),
		Category:    "  Food \t",
		Description: " Lunch  ",
	})

	assert.Equal(suite.T(), "Food", transaction.Category)
	assert.Equal(suite.T(), "Lunch", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionNilAccountID() {
	nilID := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(10),
		AccountID: &nilID,
	})

	assert.Nil(suite.T(), transaction.AccountID)
}

func (suite *TestSuiteStandard) TestTransactionImportIDUnique() {
	suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(10),
		ImportID: "bank:1",
	})

	duplicate := models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(10),
		ImportID: "bank:1",
	}
	err := models.DB.Create(&duplicate).Error
	assert.NotNil(suite.T(), err)

	// An empty import ID is not part of duplicate detection
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(1)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(2)})
}
