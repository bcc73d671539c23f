package v1

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/planner"
	"github.com/pennyflow/backend/internal/types"
)

// BudgetEditable represents all user configurable parameters of a
// budget limit.
type BudgetEditable struct {
	Category string      `json:"category" binding:"required" example:"Food"`  // The category the limit applies to
	Amount   Amount      `json:"amount" example:"250.00"`                     // The spending limit
	Month    types.Month `json:"month" example:"2024-01" swaggertype:"string"` // Month of the budget. Defaults to the current month
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Month:    editable.Month,
		Limit:    editable.Amount.Decimal,
	}
}

// MonthlyIncomeEditable represents a manual income override.
type MonthlyIncomeEditable struct {
	Amount Amount      `json:"amount" example:"2100.00"`                     // The income for the month
	Month  types.Month `json:"month" example:"2024-01" swaggertype:"string"` // Month the override applies to. Defaults to the current month
}

// Budget is a stored spending limit as it is returned by the API.
type Budget struct {
	Category string      `json:"category" example:"Food"`
	Amount   Amount      `json:"amount" example:"250.00"`
	Month    types.Month `json:"month" example:"2024-01" swaggertype:"string"`
}

func newBudget(budget models.Budget) Budget {
	return Budget{
		Category: budget.Category,
		Amount:   newAmount(budget.Limit),
		Month:    budget.Month,
	}
}

type BudgetResponse struct {
	Data  Budget  `json:"data"`  // The budget data
	Error *string `json:"error"` // The error, if any occurred
}

// MonthlyIncome is a manual income override as it is returned by the API.
type MonthlyIncome struct {
	Amount Amount      `json:"amount" example:"2100.00"`
	Month  types.Month `json:"month" example:"2024-01" swaggertype:"string"`
}

func newMonthlyIncome(income models.MonthlyIncome) MonthlyIncome {
	return MonthlyIncome{
		Amount: newAmount(income.Amount),
		Month:  income.Month,
	}
}

type MonthlyIncomeResponse struct {
	Data  MonthlyIncome `json:"data"`  // The income data
	Error *string       `json:"error"` // The error, if any occurred
}

// CategoryStatus is the status of a single budgeted category.
type CategoryStatus struct {
	Category  string `json:"category" example:"Food"`
	Spent     Amount `json:"spent" example:"150.00"`               // Sum of the month's expenses in the category
	Budget    Amount `json:"budget" example:"120.00"`              // The stored limit
	Percent   Amount `json:"percent" example:"125.00"`             // spent/budget in percent
	Remaining Amount `json:"remaining" example:"-30.00"`           // budget - spent, negative when over budget
	Pace      string `json:"pace,omitempty" example:"over pace"` // Burn-rate classification, only set for the current month
}

// BudgetStatus compares a month's spending against its budget limits.
type BudgetStatus struct {
	Month       types.Month      `json:"month" example:"2024-01" swaggertype:"string"`
	Categories  []CategoryStatus `json:"categories"`
	TotalBudget Amount           `json:"total_budget" example:"1250.00"` // Sum of all stored limits for the month
	TotalSpent  Amount           `json:"total_spent" example:"972.50"`   // Sum of all expenses of the month
}

func newBudgetStatus(s planner.BudgetStatus) BudgetStatus {
	categories := make([]CategoryStatus, 0, len(s.Categories))
	for _, category := range s.Categories {
		c := CategoryStatus{
			Category:  category.Category,
			Spent:     newAmount(category.Spent),
			Budget:    newAmount(category.Budget),
			Percent:   newAmount(category.Percent),
			Remaining: newAmount(category.Remaining),
		}

		// Pacing against elapsed time is only meaningful while the
		// month is running.
		if s.Current {
			c.Pace = string(category.Pace)
		}

		categories = append(categories, c)
	}

	return BudgetStatus{
		Month:       s.Month,
		Categories:  categories,
		TotalBudget: newAmount(s.TotalBudget),
		TotalSpent:  newAmount(s.TotalSpent),
	}
}

type BudgetStatusResponse struct {
	Data  *BudgetStatus `json:"data"`  // The status data
	Error *string       `json:"error"` // The error, if any occurred
}

// IncomeProjection is the estimated income for a month.
type IncomeProjection struct {
	ProjectedIncome Amount `json:"projected_income" example:"1100.00"` // The estimated income
	IsManual        bool   `json:"is_manual" example:"false"`          // True when a manual override is set
	MonthsAnalyzed  int    `json:"months_analyzed" example:"3"`        // Number of historical months the estimate is based on
}

func newIncomeProjection(p planner.IncomeProjection) IncomeProjection {
	return IncomeProjection{
		ProjectedIncome: newAmount(p.ProjectedIncome),
		IsManual:        p.IsManual,
		MonthsAnalyzed:  p.MonthsAnalyzed,
	}
}

type IncomeProjectionResponse struct {
	Data  *IncomeProjection `json:"data"`  // The projection data
	Error *string           `json:"error"` // The error, if any occurred
}
