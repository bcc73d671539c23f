package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetAccounts)
	r.POST("", CreateAccount)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", GetAccount)
	r.PATCH("/:id", UpdateAccount)
	r.DELETE("/:id", DeleteAccount)
}

// @Summary		List accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	accounts := make([]models.Account, 0)
	err := models.DB.Order("name ASC").Find(&accounts).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccount(account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Create account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	account := models.Account{
		Name:     editable.Name,
		Type:     editable.Type,
		IsManual: editable.IsManual == nil || *editable.IsManual,
	}
	if editable.Balance != nil {
		account.Balance = editable.Balance.Decimal
	}

	if err := models.DB.Create(&account).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: newAccount(account)})
}

// @Summary		Get account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	account, err := getModelByID[models.Account](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: newAccount(account)})
}

// @Summary		Update account
// @Description	Updates the account. Setting the balance also updates the last synced timestamp
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	account, err := getModelByID[models.Account](c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	if editable.Name != "" {
		account.Name = editable.Name
	}

	if editable.Type != "" {
		account.Type = editable.Type
	}

	if editable.IsManual != nil {
		account.IsManual = *editable.IsManual
	}

	if editable.Balance != nil {
		account.Balance = editable.Balance.Decimal
		now := time.Now().In(time.UTC)
		account.LastSyncedAt = &now
	}

	if err := models.DB.Save(&account).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: newAccount(account)})
}

// @Summary		Delete account
// @Description	Deletes the account. Transactions recorded against it are kept
// @Tags			Accounts
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	deleteResource[models.Account](c)
}
