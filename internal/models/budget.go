package models

import (
	"strings"

	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending limit for one category in one month.
//
// There is at most one budget per (category, month). Deleting a budget
// removes the limit, never the transactions recorded against it.
type Budget struct {
	DefaultModel
	Category string          `gorm:"uniqueIndex:budget_category_month"`
	Month    types.Month     `gorm:"uniqueIndex:budget_category_month"`
	Limit    decimal.Decimal `gorm:"column:limit_amount;type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if b.Month.IsZero() {
		return ErrBudgetMonthRequired
	}

	if b.Limit.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Set upserts the budget limit for its (category, month) key.
func (b *Budget) Set(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(b).Error
}
