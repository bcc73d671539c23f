// Package planner implements the forecasting and budget-projection
// core: expense aggregation, income projection, budget status with
// burn-rate classification and the cash-flow forecast.
//
// Every computation is a stateless, synchronous read over the
// collaborator interfaces. The package holds no mutable state between
// calls, concurrent invocations are independent.
package planner

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Ledger is the read-only view over recorded transactions and account
// balances. Implemented by models.Reader.
type Ledger interface {
	// TransactionsInRange returns all transactions whose calendar day
	// falls in [start, end], both bounds inclusive.
	TransactionsInRange(start, end time.Time) ([]models.Transaction, error)

	// TransactionsInRangeForAccount behaves like TransactionsInRange
	// but only returns transactions of a single account. It fails
	// with a not-found error when the account does not exist.
	TransactionsInRangeForAccount(start, end time.Time, accountID uuid.UUID) ([]models.Transaction, error)

	// AccountBalances returns the stored balance per account.
	AccountBalances() (map[uuid.UUID]decimal.Decimal, error)
}

// BudgetStore supplies the stored budget limits.
type BudgetStore interface {
	BudgetsInMonth(month types.Month) ([]models.Budget, error)
}

// IncomeStore supplies manual income overrides.
type IncomeStore interface {
	// ManualIncome returns the override for the month and whether one
	// exists.
	ManualIncome(month types.Month) (decimal.Decimal, bool, error)
}

// Options tune the planner. The zero value selects the defaults.
type Options struct {
	// TrailingMonths is the number of completed months the income
	// projection averages over. Defaults to 3.
	TrailingMonths int

	// LookbackDays is the length of the trailing window the forecast
	// derives its daily rates from. Defaults to 30.
	LookbackDays int

	// HorizonDays is the length of the forecast projection. Defaults
	// to 90.
	HorizonDays int

	// Now is the clock used for "current month" and "today". Defaults
	// to time.Now.
	Now func() time.Time
}

const (
	defaultTrailingMonths = 3
	defaultLookbackDays   = 30
	defaultHorizonDays    = 90
)

// Planner computes projections over a ledger snapshot.
type Planner struct {
	ledger  Ledger
	budgets BudgetStore
	incomes IncomeStore
	opts    Options
}

// New returns a Planner reading from the given collaborators.
func New(ledger Ledger, budgets BudgetStore, incomes IncomeStore, opts Options) *Planner {
	if opts.TrailingMonths <= 0 {
		opts.TrailingMonths = defaultTrailingMonths
	}

	if opts.LookbackDays <= 0 {
		opts.LookbackDays = defaultLookbackDays
	}

	if opts.HorizonDays <= 0 {
		opts.HorizonDays = defaultHorizonDays
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Planner{
		ledger:  ledger,
		budgets: budgets,
		incomes: incomes,
		opts:    opts,
	}
}

// day truncates t to its calendar day in UTC.
func day(t time.Time) time.Time {
	year, month, d := t.In(time.UTC).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
