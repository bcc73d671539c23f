package planner

import (
	"time"

	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProjectionPoint is the projected balance at the end of one day.
type ProjectionPoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Forecast is a linear projection of the total balance.
type Forecast struct {
	CurrentBalance decimal.Decimal
	DailyBurn      decimal.Decimal
	DailyIncome    decimal.Decimal
	Projection     []ProjectionPoint
}

// Forecast projects the total account balance forward day by day.
//
// The daily burn and income rates are the expense and income sums over
// the trailing lookback window divided by the window length. The
// projection is purely linear: balance[0] is today's balance,
// balance[d] = balance[d-1] + income - burn. Scenario deltas are
// arithmetic on the returned rates and are left to the caller.
func (p *Planner) Forecast() (Forecast, error) {
	balances, err := p.ledger.AccountBalances()
	if err != nil {
		return Forecast{}, err
	}

	forecast := Forecast{
		DailyBurn:   decimal.Zero,
		DailyIncome: decimal.Zero,
	}

	for _, balance := range balances {
		forecast.CurrentBalance = forecast.CurrentBalance.Add(balance)
	}

	today := day(p.opts.Now())
	lookback := decimal.NewFromInt(int64(p.opts.LookbackDays))

	// The window is the lookback number of days up to and including
	// today.
	start := today.AddDate(0, 0, -(p.opts.LookbackDays - 1))
	transactions, err := p.ledger.TransactionsInRange(start, today)
	if err != nil {
		return Forecast{}, err
	}

	var spent, earned decimal.Decimal
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeExpense:
			spent = spent.Add(t.Amount)
		case models.TransactionTypeIncome:
			earned = earned.Add(t.Amount)
		}
	}

	if lookback.IsPositive() {
		forecast.DailyBurn = spent.Div(lookback)
		forecast.DailyIncome = earned.Div(lookback)
	}

	slope := forecast.DailyIncome.Sub(forecast.DailyBurn)

	forecast.Projection = make([]ProjectionPoint, 0, p.opts.HorizonDays+1)
	balance := forecast.CurrentBalance
	for d := 0; d <= p.opts.HorizonDays; d++ {
		forecast.Projection = append(forecast.Projection, ProjectionPoint{
			Date:    today.AddDate(0, 0, d),
			Balance: balance,
		})

		balance = balance.Add(slope)
	}

	return forecast, nil
}
