package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense.
//
// A transaction is immutable once recorded, except for category
// reassignment and deletion.
type Transaction struct {
	DefaultModel
	Type        TransactionType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time       // Calendar day of the transaction, stored as midnight UTC
	Category    string          // Category name. Required for expenses, empty for income
	Description string
	AccountID   *uuid.UUID // The account the transaction belongs to, if any
	Account     Account    `json:"-"`
	ImportID    string     `gorm:"uniqueIndex:transaction_import_id,where:import_id != ''"` // External ID used for duplicate detection by the sync collaborator
}

// AfterFind updates the timestamp and date to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - validates the type, amount and category
//   - truncates the date to its calendar day in UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	t.ImportID = strings.TrimSpace(t.ImportID)

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Type == TransactionTypeExpense && t.Category == "" {
		return ErrExpenseCategoryRequired
	}

	if t.Type == TransactionTypeIncome && t.Category != "" {
		return ErrIncomeCategoryNotAllowed
	}

	// Ensure that the account ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.AccountID != nil && *t.AccountID == uuid.Nil {
		t.AccountID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}

	// Only the calendar day is meaningful, aggregation happens on day
	// boundaries
	year, month, day := t.Date.In(time.UTC).Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}
