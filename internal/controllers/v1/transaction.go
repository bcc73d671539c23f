package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetTransactions)
	r.POST("", CreateTransaction)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", GetTransaction)
	r.PATCH("/:id", UpdateTransaction)
	r.DELETE("/:id", DeleteTransaction)
}

// @Summary		List transactions
// @Description	Returns a paginated list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			type		query		string	false	"Filter by type"	Enums(income, expense)
// @Param			category	query		string	false	"Filter by category"
// @Param			account		query		string	false	"Filter by account ID"
// @Param			start		query		string	false	"Earliest date to include, YYYY-MM-DD"
// @Param			end			query		string	false	"Latest date to include, YYYY-MM-DD"
// @Param			offset		query		uint	false	"The offset of the first transaction returned. Defaults to 0"
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 50"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if filter.Type != "" && !slices.Contains([]models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}, filter.Type) {
		c.JSON(http.StatusBadRequest, httpError{models.ErrTransactionTypeInvalid.Error()})
		return
	}

	if !filter.End.IsZero() && filter.End.Before(filter.Start) {
		c.JSON(http.StatusBadRequest, httpError{errEndBeforeStart.Error()})
		return
	}

	query := models.DB.Model(&models.Transaction{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.AccountID != "" {
		accountID, err := uuid.Parse(filter.AccountID)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
			return
		}

		// Referencing a deleted account is an error, not an empty list
		var account models.Account
		if err := models.DB.First(&account, "id = ?", accountID).Error; err != nil {
			c.JSON(status(err), httpError{err.Error()})
			return
		}

		query = query.Where("account_id = ?", accountID)
	}

	if !filter.Start.IsZero() {
		query = query.Where("date >= ?", filter.Start)
	}

	if !filter.End.IsZero() {
		query = query.Where("date < ?", filter.End.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	transactions := make([]models.Transaction, 0)
	err := query.
		Order("date DESC, created_at DESC").
		Offset(int(filter.Offset)).
		Limit(filter.Limit).
		Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  filter.Limit,
			Total:  total,
		},
	})
}

// @Summary		Create transaction
// @Description	Records a new income or expense transaction
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	transaction := editable.model()
	if err := models.DB.Create(&transaction).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	// Remember which words map to which category so that future
	// transactions can get a suggestion
	if transaction.Type == models.TransactionTypeExpense && transaction.Description != "" {
		if err := models.LearnMapping(models.DB, transaction.Description, transaction.Category); err != nil {
			c.JSON(status(err), httpError{err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Get transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getModelByID[models.Transaction](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Reassign transaction category
// @Description	Moves an expense transaction to another existing category. No other field of a recorded transaction can be changed
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionUpdate	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getModelByID[models.Transaction](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if transaction.Type != models.TransactionTypeExpense {
		c.JSON(http.StatusBadRequest, httpError{models.ErrIncomeCategoryNotAllowed.Error()})
		return
	}

	var update TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	// The target category has to exist, reassignment never creates one
	var category models.Category
	if err := models.DB.First(&category, "name = ?", update.Category).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	transaction.Category = category.Name
	if err := models.DB.Save(&transaction).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if transaction.Description != "" {
		if err := models.LearnMapping(models.DB, transaction.Description, transaction.Category); err != nil {
			c.JSON(status(err), httpError{err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Delete transaction
// @Tags			Transactions
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	deleteResource[models.Transaction](c)
}
