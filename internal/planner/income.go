package planner

import (
	"time"

	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// How many completed months are scanned for income data before the
// projection gives up looking for more.
const incomeScanMonths = 12

// IncomeProjection is the estimated income for a month.
type IncomeProjection struct {
	ProjectedIncome decimal.Decimal
	IsManual        bool
	MonthsAnalyzed  int
}

// ProjectIncome estimates the income for the given month.
//
// A manual override for the month always wins. Otherwise the result is
// the average of the income totals of the trailing completed months
// that have at least one income transaction, at most
// Options.TrailingMonths of them. With no income history at all the
// projection is zero.
func (p *Planner) ProjectIncome(month types.Month) (IncomeProjection, error) {
	amount, ok, err := p.incomes.ManualIncome(month)
	if err != nil {
		return IncomeProjection{}, err
	}

	if ok {
		return IncomeProjection{
			ProjectedIncome: amount,
			IsManual:        true,
		}, nil
	}

	// Completed months only: scanning starts at the month before the
	// current one.
	now := p.opts.Now()
	latest := types.NewMonth(now.Year(), now.Month()).AddDate(0, -1)
	earliest := latest.AddDate(0, -(incomeScanMonths - 1))

	transactions, err := p.ledger.TransactionsInRange(earliest.Start(), latest.End().Add(-24*time.Hour))
	if err != nil {
		return IncomeProjection{}, err
	}

	totals := make(map[types.Month]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeIncome {
			continue
		}

		m := types.MonthOf(t.Date)
		totals[m] = totals[m].Add(t.Amount)
	}

	sum := decimal.Zero
	analyzed := 0
	for m := latest; analyzed < p.opts.TrailingMonths && !m.Before(earliest); m = m.AddDate(0, -1) {
		total, ok := totals[m]
		if !ok {
			continue
		}

		sum = sum.Add(total)
		analyzed++
	}

	projection := IncomeProjection{MonthsAnalyzed: analyzed}
	if analyzed == 0 {
		projection.ProjectedIncome = decimal.Zero
		return projection, nil
	}

	projection.ProjectedIncome = sum.Div(decimal.NewFromInt(int64(analyzed))).Round(2)
	return projection, nil
}
