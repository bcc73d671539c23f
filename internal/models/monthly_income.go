package models

import (
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlyIncome is a manual income override for a single month.
//
// When a row exists for a month, the income projection returns its
// amount instead of the computed historical average.
type MonthlyIncome struct {
	Timestamps
	Month  types.Month     `gorm:"primaryKey"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (m *MonthlyIncome) BeforeSave(_ *gorm.DB) error {
	if m.Month.IsZero() {
		return ErrBudgetMonthRequired
	}

	if m.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Set upserts the manual income for the month.
func (m *MonthlyIncome) Set(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(m).Error
}
