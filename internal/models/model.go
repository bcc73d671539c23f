// Package models implements the persistent resources of pennyflow.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources addressed by ID.
// MonthlyIncome keys on the month instead and therefore embeds
// Timestamps directly.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"d430d7e3-d14c-4a1e-b8cb-1e0deeaa371d"` // UUID for the resource
	Timestamps
}

// Timestamps holds the timestamps that gorm manages automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2026-01-04T18:43:00.271152Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2026-02-26T09:12:37.947301Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2026-03-01T07:23:50.611952Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// AfterFind normalizes the timestamps to the UTC location. They are
// stored in UTC already, but sqlite hands them back with a +0000
// offset location, which breaks time.Time equality in comparisons.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates the UUID for new resources.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
