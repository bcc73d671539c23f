package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType categorizes an account for display purposes.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// Account represents an asset account, e.g. a bank account.
//
// The balance is a stored value: either synced by the external
// bank-sync collaborator or entered by the user. It may be negative,
// e.g. for credit accounts.
type Account struct {
	DefaultModel
	Name         string
	Type         AccountType
	Balance      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IsManual     bool            // True when the balance is maintained by hand
	LastSyncedAt *time.Time
}

// BeforeSave validates the account and defaults its type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if a.Name == "" {
		return ErrAccountNameRequired
	}

	if a.Type == "" {
		a.Type = AccountTypeChecking
	}

	return nil
}
