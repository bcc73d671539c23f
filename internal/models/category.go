package models

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultCategoryName is the category all transactions fall back to
// when their own category is deleted. It cannot be deleted itself.
const DefaultCategoryName = "Other"

// DefaultCategories are seeded for every fresh database.
var DefaultCategories = []string{
	"Housing",
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Shopping",
	"Healthcare",
	DefaultCategoryName,
}

// Category represents a named group of expenses.
type Category struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex:category_name"`
	IsDefault bool   // True for the fallback category, which cannot be deleted
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

// SeedCategories creates the default category set if no categories
// exist yet.
func SeedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		category := Category{
			Name:      name,
			IsDefault: name == DefaultCategoryName,
		}

		err := db.Create(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Rename changes the category name and cascades the change to all
// transactions, budgets and keyword mappings referencing it. The
// cascade happens in a single database transaction.
func (c *Category) Rename(db *gorm.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryNameRequired
	}

	oldName := c.Name

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(c).Update("name", name).Error
		if err != nil {
			return err
		}

		return cascadeCategoryName(tx, oldName, name)
	})
}

// Delete removes the category and reassigns all referencing
// transactions, budgets and keyword mappings to the default category.
// Delete and reassignment happen in a single database transaction so
// that no dangling category reference can ever be observed.
func (c *Category) Delete(db *gorm.DB) error {
	if c.IsDefault || c.Name == DefaultCategoryName {
		return ErrCategoryIsDefault
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// A budget for the default category may already exist for a
		// month the deleted category is budgeted in. The reassigned
		// row would collide with it, so it is dropped instead.
		err := tx.Unscoped().
			Where("category = ? AND month IN (?)", c.Name,
				tx.Model(&Budget{}).Select("month").Where("category = ?", DefaultCategoryName)).
			Delete(&Budget{}).Error
		if err != nil {
			return err
		}

		err = cascadeCategoryName(tx, c.Name, DefaultCategoryName)
		if err != nil {
			return err
		}

		// Hard delete, so that the name can be reused immediately
		return tx.Unscoped().Delete(c).Error
	})
}

// cascadeCategoryName rewrites every reference to a category name.
// Hooks are skipped, the referencing rows themselves do not change
// semantically.
func cascadeCategoryName(tx *gorm.DB, from, to string) error {
	tx = tx.Session(&gorm.Session{SkipHooks: true})

	err := tx.Model(&Transaction{}).Where("category = ?", from).Update("category", to).Error
	if err != nil {
		return err
	}

	err = tx.Model(&Budget{}).Where("category = ?", from).Update("category", to).Error
	if err != nil {
		return err
	}

	return tx.Model(&CategoryMapping{}).Where("category = ?", from).Update("category", to).Error
}
