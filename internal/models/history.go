package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HistoryPeriod is the archived metadata of a past budget period, keyed by
// the period's month. It is immutable after the archival write, except for
// deletion.
type HistoryPeriod struct {
	Timestamps
	Period      types.Month `gorm:"primaryKey"`
	Start       time.Time
	End         time.Time
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// HistoryCategory is a frozen copy of a category at archival time. The tree
// shape is preserved through the parent's name, category ids are not stable
// across periods.
type HistoryCategory struct {
	DefaultModel
	Period        types.Month `gorm:"index"`
	Name          string
	Allocated     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ParentName    string
	ComputedTotal bool
}

// IsMain reports whether the snapshot was taken from a main category.
func (h HistoryCategory) IsMain() bool {
	return h.ParentName == ""
}

// HistoryIncome is a frozen copy of an income at archival time.
type HistoryIncome struct {
	DefaultModel
	Period types.Month `gorm:"index"`
	Name   string
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// archivePeriod writes the history snapshot for the outgoing period. Every
// part is skipped when it already exists, so an interrupted rollover can be
// re-run without duplicating snapshot rows.
func archivePeriod(db *gorm.DB, period BudgetPeriod) error {
	id := period.PeriodID()

	existing, err := HistoryFor(db, id)
	if err != nil {
		return err
	}

	if existing == nil {
		record := HistoryPeriod{
			Period:      id,
			Start:       period.Start,
			End:         period.End,
			TotalAmount: period.TotalAmount,
		}

		err := db.Create(&record).Error
		if err != nil {
			return err
		}
	}

	err = snapshotCategories(db, id)
	if err != nil {
		return err
	}

	return snapshotIncomes(db, id)
}

func snapshotCategories(db *gorm.DB, id types.Month) error {
	var count int64
	err := db.Model(&HistoryCategory{}).Where("period = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	var categories []Category
	err = db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	for _, category := range categories {
		snapshot := HistoryCategory{
			Period:        id,
			Name:          category.Name,
			Allocated:     category.Allocated,
			ComputedTotal: category.ComputedTotal,
		}

		if category.ParentID != nil {
			snapshot.ParentName = names[*category.ParentID]
		}

		err := db.Create(&snapshot).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func snapshotIncomes(db *gorm.DB, id types.Month) error {
	var count int64
	err := db.Model(&HistoryIncome{}).Where("period = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	var incomes []Income
	err = db.Order("created_at ASC").Find(&incomes).Error
	if err != nil {
		return err
	}

	for _, income := range incomes {
		snapshot := HistoryIncome{
			Period: id,
			Name:   income.Name,
			Amount: income.Amount,
		}

		err := db.Create(&snapshot).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// HistoryMonths returns all archived period ids, newest first.
func HistoryMonths(db *gorm.DB) ([]types.Month, error) {
	var periods []HistoryPeriod

	err := db.Order("period DESC").Find(&periods).Error
	if err != nil {
		return nil, err
	}

	months := make([]types.Month, 0, len(periods))
	for _, period := range periods {
		months = append(months, period.Period)
	}

	return months, nil
}

// HistoryFor returns the archived metadata for the month. It returns nil
// without an error when the month has not been archived.
func HistoryFor(db *gorm.DB, month types.Month) (*HistoryPeriod, error) {
	var period HistoryPeriod

	err := db.Where("period = ?", month).First(&period).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &period, nil
}

// HistoryCategories returns the category snapshots of an archived period,
// main categories first.
func HistoryCategories(db *gorm.DB, month types.Month) ([]HistoryCategory, error) {
	var categories []HistoryCategory

	err := db.
		Where("period = ?", month).
		Order("parent_name ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// HistoryIncomes returns the income snapshots of an archived period.
func HistoryIncomes(db *gorm.DB, month types.Month) ([]HistoryIncome, error) {
	var incomes []HistoryIncome

	err := db.
		Where("period = ?", month).
		Order("created_at ASC").
		Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	return incomes, nil
}

// DeletePeriod removes an archived period together with both of its nested
// snapshot collections.
func DeletePeriod(db *gorm.DB, month types.Month) error {
	var period HistoryPeriod
	err := db.Where("period = ?", month).First(&period).Error
	if err != nil {
		return err
	}

	err = db.Unscoped().Where("period = ?", month).Delete(&HistoryCategory{}).Error
	if err != nil {
		return err
	}

	err = db.Unscoped().Where("period = ?", month).Delete(&HistoryIncome{}).Error
	if err != nil {
		return err
	}

	return db.Unscoped().Where("period = ?", month).Delete(&HistoryPeriod{}).Error
}

// CopyCategoriesFromPeriod copies an archived period's category tree into the
// current period. Categories that already exist on the same level with the
// same name are left untouched, allocations are carried over as archived.
//
// The allocation validation is skipped: the copied allocations were valid
// against the archived period's income, the new period's income is usually
// not entered yet when the plan is copied forward.
func CopyCategoriesFromPeriod(db *gorm.DB, month types.Month) error {
	var period HistoryPeriod
	err := db.Where("period = ?", month).First(&period).Error
	if err != nil {
		return err
	}

	snapshots, err := HistoryCategories(db, month)
	if err != nil {
		return err
	}

	skipDB := db.Set(DBSkipAllocationCheck, true)

	// Main categories first so that subs can reference them
	mainIDs := make(map[string]uuid.UUID)
	for _, snapshot := range snapshots {
		if !snapshot.IsMain() {
			continue
		}

		var existing Category
		err := db.Where("name = ? AND parent_id IS NULL", snapshot.Name).First(&existing).Error
		if err == nil {
			mainIDs[existing.Name] = existing.ID
			continue
		}
		if !isNotFound(err) {
			return err
		}

		category := Category{
			Name:          snapshot.Name,
			Allocated:     snapshot.Allocated,
			ComputedTotal: snapshot.ComputedTotal,
		}

		err = skipDB.Create(&category).Error
		if err != nil {
			return err
		}

		mainIDs[category.Name] = category.ID
	}

	for _, snapshot := range snapshots {
		if snapshot.IsMain() {
			continue
		}

		parentID, ok := mainIDs[snapshot.ParentName]
		if !ok {
			continue
		}

		var existing Category
		err := db.Where("name = ? AND parent_id = ?", snapshot.Name, parentID).First(&existing).Error
		if err == nil {
			continue
		}
		if !isNotFound(err) {
			return err
		}

		category := Category{
			Name:          snapshot.Name,
			ParentID:      &parentID,
			Allocated:     snapshot.Allocated,
			ComputedTotal: snapshot.ComputedTotal,
		}

		err = skipDB.Create(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}
