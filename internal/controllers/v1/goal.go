package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
)

// RegisterGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetGoals)
	r.POST("", CreateGoal)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", GetGoal)
	r.PATCH("/:id", UpdateGoal)
	r.DELETE("/:id", DeleteGoal)
}

// @Summary		List goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	goals := make([]models.Goal, 0)
	err := models.DB.Order("created_at ASC").Find(&goals).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	goal := models.Goal{
		Description: editable.Description,
		Deadline:    editable.Deadline,
	}
	if editable.TargetAmount != nil {
		goal.TargetAmount = editable.TargetAmount.Decimal
	}
	if editable.CurrentAmount != nil {
		goal.CurrentAmount = editable.CurrentAmount.Decimal
	}

	if err := models.DB.Create(&goal).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: newGoal(goal)})
}

// @Summary		Get goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, err := getModelByID[models.Goal](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: newGoal(goal)})
}

// @Summary		Update goal
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	goal, err := getModelByID[models.Goal](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if editable.Description != "" {
		goal.Description = editable.Description
	}

	if editable.TargetAmount != nil {
		goal.TargetAmount = editable.TargetAmount.Decimal
	}

	if editable.CurrentAmount != nil {
		goal.CurrentAmount = editable.CurrentAmount.Decimal
	}

	if editable.Deadline != nil {
		goal.Deadline = editable.Deadline
	}

	if err := models.DB.Save(&goal).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: newGoal(goal)})
}

// @Summary		Delete goal
// @Tags			Goals
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	deleteResource[models.Goal](c)
}
