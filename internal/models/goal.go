package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal.
//
// The current amount is edited by the user, it is not derived from the
// ledger.
type Goal struct {
	DefaultModel
	Description   string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline      *time.Time
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Description = strings.TrimSpace(g.Description)

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
