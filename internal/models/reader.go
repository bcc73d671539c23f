package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reader is the read-only view over the ledger and the budget
// configuration. It satisfies the collaborator interfaces of the
// planner package.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) Reader {
	return Reader{db: db}
}

// day returns the calendar day of t as midnight UTC.
func day(t time.Time) time.Time {
	year, month, d := t.In(time.UTC).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// TransactionsInRange returns all transactions whose calendar day falls
// in [start, end], both bounds inclusive.
func (r Reader) TransactionsInRange(start, end time.Time) ([]Transaction, error) {
	transactions := make([]Transaction, 0)

	err := r.db.
		Where("date >= ? AND date < ?", day(start), day(end).Add(24*time.Hour)).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// TransactionsInRangeForAccount behaves like TransactionsInRange but
// only returns transactions of a single account. It fails with a
// not-found error when the account does not exist.
func (r Reader) TransactionsInRangeForAccount(start, end time.Time, accountID uuid.UUID) ([]Transaction, error) {
	var account Account
	err := r.db.First(&account, "id = ?", accountID).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0)
	err = r.db.
		Where("account_id = ?", accountID).
		Where("date >= ? AND date < ?", day(start), day(end).Add(24*time.Hour)).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// AccountBalances returns the stored balance of every account.
func (r Reader) AccountBalances() (map[uuid.UUID]decimal.Decimal, error) {
	var accounts []Account
	err := r.db.Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, account := range accounts {
		balances[account.ID] = account.Balance
	}

	return balances, nil
}

// BudgetsInMonth returns all stored budget limits for the month.
func (r Reader) BudgetsInMonth(month types.Month) ([]Budget, error) {
	budgets := make([]Budget, 0)

	err := r.db.
		Where(&Budget{Month: month}).
		Order("category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// ManualIncome returns the manual income override for the month and
// whether one exists.
func (r Reader) ManualIncome(month types.Month) (decimal.Decimal, bool, error) {
	var income MonthlyIncome
	err := r.db.First(&income, "month = ?", month).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	return income.Amount, true, nil
}
