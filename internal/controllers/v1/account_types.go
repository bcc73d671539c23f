package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
)

// AccountEditable represents all user configurable parameters of an
// account.
type AccountEditable struct {
	Name     string             `json:"name" example:"Main checking"`
	Type     models.AccountType `json:"type" example:"checking" enums:"checking,savings,credit,investment,other"`
	Balance  *Amount            `json:"balance" example:"1337.42"`
	IsManual *bool              `json:"is_manual" example:"true"` // True when the balance is maintained by hand
}

// Account is an asset account as it is returned by the API.
type Account struct {
	ID           uuid.UUID          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name         string             `json:"name" example:"Main checking"`
	Type         models.AccountType `json:"type" example:"checking"`
	Balance      Amount             `json:"balance" example:"1337.42"`
	IsManual     bool               `json:"is_manual" example:"true"`
	LastSyncedAt *time.Time         `json:"last_synced_at" example:"2024-01-15T14:43:27.89977Z"` // When the balance was last updated
}

func newAccount(account models.Account) Account {
	return Account{
		ID:           account.ID,
		Name:         account.Name,
		Type:         account.Type,
		Balance:      newAmount(account.Balance),
		IsManual:     account.IsManual,
		LastSyncedAt: account.LastSyncedAt,
	}
}

type AccountResponse struct {
	Data  Account `json:"data"`  // The account data
	Error *string `json:"error"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`  // List of accounts
	Error *string   `json:"error"` // The error, if any occurred
}
