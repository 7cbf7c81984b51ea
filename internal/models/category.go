package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is a node of the two-level spending category tree of the current
// budget period.
//
// A category without a parent is a main category, a category with a parent is
// a sub category. The parent of a sub category must itself be a main category.
//
// A category with ComputedTotal set is a display-only rollup row: it never
// holds an allocation of its own and always mirrors its parent's rolled-up
// figures in the month overview.
type Category struct {
	DefaultModel
	Name          string          `gorm:"uniqueIndex:category_parent_name"`
	Note          string
	ParentID      *uuid.UUID      `gorm:"uniqueIndex:category_parent_name"`
	Parent        *Category       `json:"-"`
	Allocated     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ComputedTotal bool
}

// IsMain reports whether the category is a main category.
func (c Category) IsMain() bool {
	return c.ParentID == nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	if err := c.checkParent(tx, *toSave); err != nil {
		return err
	}

	return checkAllocation(tx, toSave.ID, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("ParentID") {
		if err := c.checkParent(tx, toSave); err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Allocated") {
		candidate := *c
		candidate.Allocated = toSave.Allocated
		return checkAllocation(tx, c.ID, candidate)
	}

	return nil
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	// Rollup rows never hold own data
	if c.ComputedTotal {
		c.Allocated = decimal.Zero
	}

	return nil
}

// checkParent verifies that the referenced parent exists and is a main
// category.
func (c *Category) checkParent(tx *gorm.DB, toSave Category) error {
	if toSave.ParentID == nil {
		return nil
	}

	var parent Category
	err := tx.First(&parent, "id = ?", *toSave.ParentID).Error
	if err != nil {
		return err
	}

	if !parent.IsMain() {
		return ErrParentNotMain
	}

	return nil
}

// checkAllocation enforces the budget validation invariant: the sum of all
// counted allocations plus the value being written must not exceed the total
// income of the current period.
//
// Counted are the leaves of the category tree, excluding rollup rows: sub
// categories and main categories without children. The allocation of a main
// category with children mirrors the sum of its children and counting it
// would double the amount.
func checkAllocation(tx *gorm.DB, exclude uuid.UUID, toSave Category) error {
	if toSave.ComputedTotal {
		return nil
	}

	if skip, ok := tx.Get(DBSkipAllocationCheck); ok && skip == true {
		return nil
	}

	// A main category with children is a mirror, its value is not counted
	if toSave.ParentID == nil {
		var children int64
		err := tx.Session(&gorm.Session{NewDB: true}).
			Model(&Category{}).
			Where("parent_id = ?", exclude).
			Count(&children).Error
		if err != nil {
			return err
		}

		if children > 0 {
			return nil
		}
	}

	income, err := TotalIncome(tx.Session(&gorm.Session{NewDB: true}))
	if err != nil {
		return err
	}

	parents := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Category{}).
		Select("parent_id").
		Where("parent_id IS NOT NULL")

	var sum decimal.NullDecimal
	err = tx.Session(&gorm.Session{NewDB: true}).
		Model(&Category{}).
		Where("computed_total = ?", false).
		Where("id != ?", exclude).
		Where("id NOT IN (?)", parents).
		Select("SUM(allocated)").
		Row().
		Scan(&sum)
	if err != nil {
		return err
	}

	if sum.Decimal.Add(toSave.Allocated).GreaterThan(income) {
		return ErrAllocationExceedsIncome
	}

	return nil
}

// defaultCategory is one entry of the default catalogue.
type defaultCategory struct {
	name string
	subs []string
}

// The rollup row name of the default catalogue. Kept for familiarity with the
// mobile app's fixed catalogue.
const totalRowName = "Yhteensä"

var defaultCatalogue = []defaultCategory{
	{name: "Asuminen", subs: []string{"Vuokra", "Sähkö", "Vesi", totalRowName}},
	{name: "Ruoka", subs: []string{"Ruokakauppa", "Ravintolat", totalRowName}},
	{name: "Liikenne", subs: []string{"Polttoaine", "Joukkoliikenne", totalRowName}},
	{name: "Vapaa-aika", subs: []string{"Harrastukset", "Viihde", totalRowName}},
	{name: "Säästäminen", subs: nil},
}

// SeedDefaultCategories populates the fixed default catalogue. It refuses to
// run when categories already exist.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoriesNotEmpty
	}

	for _, entry := range defaultCatalogue {
		main := Category{Name: entry.name}
		err := db.Create(&main).Error
		if err != nil {
			return err
		}

		for _, name := range entry.subs {
			sub := Category{
				Name:          name,
				ParentID:      &main.ID,
				ComputedTotal: name == totalRowName,
			}

			err := db.Create(&sub).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// savingsCategoryName is the main and sub category a savings goal allocates
// its monthly amount to.
const savingsCategoryName = "Säästäminen"

// UpsertSavingsCategory ensures the savings main category and its equally
// named sub category exist and sets the sub category's allocation to the
// monthly amount. The write is subject to the allocation validation.
func UpsertSavingsCategory(db *gorm.DB, monthlyAmount decimal.Decimal) error {
	var main Category
	err := db.Where("name = ? AND parent_id IS NULL", savingsCategoryName).First(&main).Error
	if err != nil {
		if !isNotFound(err) {
			return err
		}

		main = Category{Name: savingsCategoryName}
		if err := db.Create(&main).Error; err != nil {
			return err
		}
	}

	var sub Category
	err = db.Where("name = ? AND parent_id = ?", savingsCategoryName, main.ID).First(&sub).Error
	if err != nil {
		if !isNotFound(err) {
			return err
		}

		sub = Category{
			Name:      savingsCategoryName,
			ParentID:  &main.ID,
			Allocated: monthlyAmount,
		}
		return db.Create(&sub).Error
	}

	return db.Model(&sub).Select("Allocated").Updates(Category{Allocated: monthlyAmount}).Error
}
