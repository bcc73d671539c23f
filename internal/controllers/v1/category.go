package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)

	r.OPTIONS("/suggest", httputil.OptionsPost)
	r.POST("/suggest", SuggestCategory)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", GetCategory)
	r.PATCH("/:id", UpdateCategory)
	r.DELETE("/:id", DeleteCategory)
}

// @Summary		List categories
// @Description	Returns all categories. The default set is seeded on first call
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	if err := models.SeedCategories(models.DB); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	categories := make([]models.Category, 0)
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	category := models.Category{Name: editable.Name}
	if err := models.DB.Create(&category).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Get category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := getModelByID[models.Category](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Rename category
// @Description	Renames the category and updates all transactions, budgets and learned keywords referencing it
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, err := getModelByID[models.Category](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if err := category.Rename(models.DB, editable.Name); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Delete category
// @Description	Deletes the category and reassigns all referencing transactions to the default category
// @Tags			Categories
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, err := getModelByID[models.Category](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if err := category.Delete(models.DB); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Suggest category
// @Description	Suggests a category for a transaction description based on learned keywords
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	SuggestionResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		SuggestionRequest	true	"Description to categorize"
// @Router			/v1/categories/suggest [post]
func SuggestCategory(c *gin.Context) {
	var request SuggestionRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	category, confidence, err := models.SuggestCategory(models.DB, request.Description)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{Data: Suggestion{
		SuggestedCategory: category,
		Confidence:        confidence,
	}})
}
