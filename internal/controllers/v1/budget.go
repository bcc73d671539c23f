package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreateBudget)

	r.OPTIONS("/status", httputil.OptionsGet)
	r.GET("/status", GetBudgetStatus)

	r.OPTIONS("/projection", httputil.OptionsGet)
	r.GET("/projection", GetIncomeProjection)

	r.OPTIONS("/income", httputil.OptionsPost)
	r.POST("/income", SetMonthlyIncome)

	r.OPTIONS("/:category", httputil.OptionsDelete)
	r.DELETE("/:category", DeleteBudget)
}

// @Summary		Set budget limit
// @Description	Creates or replaces the spending limit for a category in a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	budget := editable.model()
	if budget.Month.IsZero() {
		budget.Month = types.MonthOf(time.Now())
	}

	if err := budget.Set(models.DB); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(budget)})
}

// @Summary		Delete budget limit
// @Description	Removes the spending limit for a category in a month
// @Tags			Budgets
// @Produce		json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Category name"
// @Param			month		query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budget/{category} [delete]
func DeleteBudget(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	month := query.monthOrCurrent()

	var budget models.Budget
	err := models.DB.
		Where(&models.Budget{Category: c.Param("category"), Month: month}).
		First(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	// Hard delete so that the limit can be recreated for the same
	// category and month.
	if err := models.DB.Unscoped().Delete(&budget).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Budget status
// @Description	Returns spending against budget limits for a month, including burn-rate pacing for the current month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetStatusResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budget/status [get]
func GetBudgetStatus(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	budgetStatus, err := newPlanner().BudgetStatus(query.monthOrCurrent())
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newBudgetStatus(budgetStatus)
	c.JSON(http.StatusOK, BudgetStatusResponse{Data: &data})
}

// @Summary		Income projection
// @Description	Returns the estimated income for a month, preferring a manual override over the trailing average
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	IncomeProjectionResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budget/projection [get]
func GetIncomeProjection(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	projection, err := newPlanner().ProjectIncome(query.monthOrCurrent())
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newIncomeProjection(projection)
	c.JSON(http.StatusOK, IncomeProjectionResponse{Data: &data})
}

// @Summary		Set monthly income
// @Description	Creates or replaces the manual income override for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	MonthlyIncomeResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			income	body		MonthlyIncomeEditable	true	"Income"
// @Router			/v1/budget/income [post]
func SetMonthlyIncome(c *gin.Context) {
	var editable MonthlyIncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	income := models.MonthlyIncome{
		Month:  editable.Month,
		Amount: editable.Amount.Decimal,
	}
	if income.Month.IsZero() {
		income.Month = types.MonthOf(time.Now())
	}

	if err := income.Set(models.DB); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthlyIncomeResponse{Data: newMonthlyIncome(income)})
}
