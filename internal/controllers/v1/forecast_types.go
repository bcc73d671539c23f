package v1

import (
	"github.com/pennyflow/backend/internal/planner"
)

// ProjectionPoint is a single projected balance.
type ProjectionPoint struct {
	Date    Date   `json:"date" example:"2024-01-15" swaggertype:"string"`
	Balance Amount `json:"balance" example:"1337.42"`
}

// Forecast is a linear cash-flow projection based on recent activity.
type Forecast struct {
	CurrentBalance Amount            `json:"current_balance" example:"1337.42"` // Sum of all account balances
	DailyBurn      Amount            `json:"daily_burn" example:"32.50"`        // Average daily spending over the lookback window
	DailyIncome    Amount            `json:"daily_income" example:"70.00"`      // Average daily income over the lookback window
	Projection     []ProjectionPoint `json:"projection"`                        // Projected balance per day, starting today
}

func newForecast(f planner.Forecast) Forecast {
	projection := make([]ProjectionPoint, 0, len(f.Projection))
	for _, point := range f.Projection {
		projection = append(projection, ProjectionPoint{
			Date:    newDate(point.Date),
			Balance: newAmount(point.Balance),
		})
	}

	return Forecast{
		CurrentBalance: newAmount(f.CurrentBalance),
		DailyBurn:      newAmount(f.DailyBurn),
		DailyIncome:    newAmount(f.DailyIncome),
		Projection:     projection,
	}
}

type ForecastResponse struct {
	Data  *Forecast `json:"data"`  // The forecast data
	Error *string   `json:"error"` // The error, if any occurred
}
