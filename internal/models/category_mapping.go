package models

import (
	"errors"
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Suggestion confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// CategoryMapping stores a learned association between a transaction
// description keyword and a category. It feeds category suggestion for
// new expenses.
type CategoryMapping struct {
	DefaultModel
	Keyword  string `gorm:"uniqueIndex:mapping_keyword"` // Lower-cased description keyword or glob pattern
	Category string
	Count    uint // How often this mapping has been confirmed
}

func (m *CategoryMapping) BeforeSave(_ *gorm.DB) error {
	m.Keyword = strings.ToLower(strings.TrimSpace(m.Keyword))

	if m.Keyword == "" || m.Category == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

// LearnMapping records that a description was categorized, creating
// the mapping or bumping its counter.
func LearnMapping(db *gorm.DB, description, category string) error {
	keyword := strings.ToLower(strings.TrimSpace(description))
	if keyword == "" || category == "" {
		return nil
	}

	mapping := CategoryMapping{
		Keyword:  keyword,
		Category: category,
		Count:    1,
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "keyword"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"category": category,
			"count":    gorm.Expr("count + 1"),
		}),
	}).Create(&mapping).Error
}

// SuggestCategory returns the category a description most likely
// belongs to, with a confidence level. An exact keyword match wins,
// then the stored keywords are treated as glob patterns and matched
// against the description. An empty category is returned when nothing
// matches.
func SuggestCategory(db *gorm.DB, description string) (category, confidence string, err error) {
	needle := strings.ToLower(strings.TrimSpace(description))
	if needle == "" {
		return "", "", nil
	}

	var mapping CategoryMapping
	err = db.Where(&CategoryMapping{Keyword: needle}).First(&mapping).Error
	if err == nil {
		return mapping.Category, ConfidenceHigh, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return "", "", err
	}

	var mappings []CategoryMapping
	err = db.Order("count DESC").Find(&mappings).Error
	if err != nil {
		return "", "", err
	}

	for _, m := range mappings {
		if glob.Glob("*"+m.Keyword+"*", needle) || glob.Glob(m.Keyword, needle) {
			return m.Category, ConfidenceMedium, nil
		}
	}

	return "", "", nil
}
