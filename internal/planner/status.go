package planner

import (
	"time"

	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Pace classifies how spending progresses against the month.
type Pace string

const (
	PaceOnTrack Pace = "on track"
	PaceOver    Pace = "over pace"
	PaceUnder   Pace = "under pace"
)

// paceThreshold is the distance between spending progress and month
// progress beyond which spending counts as off pace. Fixed by design.
var paceThreshold = decimal.New(1, -1)

// percentSaturated is the value percent saturates at when the limit is
// zero but money was spent. Derived values saturate, they never fail.
var percentSaturated = decimal.New(1, 6)

// CategoryStatus is the per-category result of a budget status
// computation.
type CategoryStatus struct {
	Category  string
	Spent     decimal.Decimal
	Budget    decimal.Decimal
	Percent   decimal.Decimal
	Remaining decimal.Decimal
	Pace      Pace
}

// BudgetStatus is the result of comparing a month's spending against
// its stored budget limits.
type BudgetStatus struct {
	Month       types.Month
	Categories  []CategoryStatus
	TotalBudget decimal.Decimal
	TotalSpent  decimal.Decimal

	// Current reports whether the queried month is the current one.
	// The pace classification is only meaningful then.
	Current bool
}

// BudgetStatus compares the spending of a month against its stored
// budget limits.
//
// Only categories with a stored budget row appear in the per-category
// list. TotalBudget sums every stored limit, TotalSpent every expense
// of the month regardless of whether it is budgeted.
func (p *Planner) BudgetStatus(month types.Month) (BudgetStatus, error) {
	spent, err := p.ExpenseByCategory(month.Start(), month.End().Add(-24*time.Hour))
	if err != nil {
		return BudgetStatus{}, err
	}

	budgets, err := p.budgets.BudgetsInMonth(month)
	if err != nil {
		return BudgetStatus{}, err
	}

	now := p.opts.Now()
	progress := monthProgress(month, now)

	status := BudgetStatus{
		Month:      month,
		Categories: make([]CategoryStatus, 0, len(budgets)),
		Current:    month.Contains(now.In(time.UTC)),
	}

	for _, amount := range spent {
		status.TotalSpent = status.TotalSpent.Add(amount)
	}

	for _, budget := range budgets {
		amount := spent[budget.Category]

		status.TotalBudget = status.TotalBudget.Add(budget.Limit)
		status.Categories = append(status.Categories, CategoryStatus{
			Category:  budget.Category,
			Spent:     amount,
			Budget:    budget.Limit,
			Percent:   percent(amount, budget.Limit),
			Remaining: budget.Limit.Sub(amount),
			Pace:      classifyPace(amount, budget.Limit, progress),
		})
	}

	return status, nil
}

// percent returns spent/limit*100. 0/0 is defined as 0, spending
// against a zero limit saturates instead of failing.
func percent(spent, limit decimal.Decimal) decimal.Decimal {
	if limit.IsZero() {
		if spent.IsZero() {
			return decimal.Zero
		}
		return percentSaturated
	}

	return spent.Div(limit).Mul(decimal.New(1, 2))
}

// monthProgress returns the elapsed fraction of the month at the given
// time. A past month is fully elapsed, a future month not at all.
func monthProgress(month types.Month, now time.Time) decimal.Decimal {
	current := types.NewMonth(now.Year(), now.Month())

	if month.Before(current) {
		return decimal.New(1, 0)
	}

	if month.After(current) {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(now.Day())).
		Div(decimal.NewFromInt(int64(month.Days())))
}

// classifyPace compares spending progress against month progress.
// The comparisons are strict: a distance of exactly the threshold is
// still on track.
func classifyPace(spent, limit, progress decimal.Decimal) Pace {
	var spendingProgress decimal.Decimal
	if limit.IsPositive() {
		spendingProgress = spent.Div(limit)
	} else if spent.IsPositive() {
		// Any spending against a zero limit busts the budget
		// immediately.
		return PaceOver
	}

	diff := spendingProgress.Sub(progress)

	switch {
	case diff.GreaterThan(paceThreshold):
		return PaceOver
	case diff.LessThan(paceThreshold.Neg()) && spendingProgress.IsPositive():
		return PaceUnder
	default:
		return PaceOnTrack
	}
}
