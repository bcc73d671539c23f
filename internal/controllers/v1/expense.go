package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

type ExpenseQuery struct {
	Start     time.Time `form:"start" time_format:"2006-01-02" time_utc:"1"` // Defaults to the first day of the current month
	End       time.Time `form:"end" time_format:"2006-01-02" time_utc:"1"`  // Defaults to today
	AccountID string    `form:"account_id"`                                 // Restrict the breakdown to one account
}

type ExpenseBreakdownResponse struct {
	Data  map[string]Amount `json:"data"`  // Expense totals by category
	Error *string           `json:"error"` // The error, if any occurred
}

// RegisterExpenseRoutes registers the routes for expense breakdowns
// with the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/by-category", httputil.OptionsGet)
	r.GET("/by-category", GetExpenseBreakdown)
}

// @Summary		Expenses by category
// @Description	Returns expense totals grouped by category over an inclusive date range
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseBreakdownResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			start		query		string	false	"Start date in YYYY-MM-DD format. Defaults to the first day of the current month"
// @Param			end			query		string	false	"End date in YYYY-MM-DD format. Defaults to today"
// @Param			account_id	query		string	false	"Restrict the breakdown to the transactions of one account"
// @Router			/v1/expenses/by-category [get]
func GetExpenseBreakdown(c *gin.Context) {
	var query ExpenseQuery
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	now := time.Now().UTC()
	if query.Start.IsZero() {
		query.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if query.End.IsZero() {
		query.End = now
	}

	var breakdown map[string]decimal.Decimal
	var err error

	if query.AccountID != "" {
		accountID, parseErr := uuid.Parse(query.AccountID)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
			return
		}

		breakdown, err = newPlanner().ExpenseByCategoryForAccount(query.Start, query.End, accountID)
	} else {
		breakdown, err = newPlanner().ExpenseByCategory(query.Start, query.End)
	}

	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make(map[string]Amount, len(breakdown))
	for category, total := range breakdown {
		data[category] = newAmount(total)
	}

	c.JSON(http.StatusOK, ExpenseBreakdownResponse{Data: data})
}
