package planner

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseByCategory sums all expense amounts per category over the
// date range [start, end], bounds compared by calendar day, both
// inclusive.
//
// Categories without a matching transaction are omitted from the
// result, they are not zero-filled.
func (p *Planner) ExpenseByCategory(start, end time.Time) (map[string]decimal.Decimal, error) {
	if day(end).Before(day(start)) {
		return nil, ErrInvalidRange
	}

	transactions, err := p.ledger.TransactionsInRange(start, end)
	if err != nil {
		return nil, err
	}

	return sumExpensesByCategory(transactions), nil
}

// ExpenseByCategoryForAccount behaves like ExpenseByCategory but only
// considers the transactions of a single account.
func (p *Planner) ExpenseByCategoryForAccount(start, end time.Time, accountID uuid.UUID) (map[string]decimal.Decimal, error) {
	if day(end).Before(day(start)) {
		return nil, ErrInvalidRange
	}

	transactions, err := p.ledger.TransactionsInRangeForAccount(start, end, accountID)
	if err != nil {
		return nil, err
	}

	return sumExpensesByCategory(transactions), nil
}

func sumExpensesByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}

		breakdown[t.Category] = breakdown[t.Category].Add(t.Amount)
	}

	return breakdown
}
