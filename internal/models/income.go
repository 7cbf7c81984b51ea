package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single income entry of the current budget period.
//
// Incomes are not carried over on rollover. They are snapshotted into the
// history and then hard-deleted.
type Income struct {
	DefaultModel
	Name   string
	Note   string
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Note = strings.TrimSpace(i.Note)

	return nil
}

// TotalIncome returns the sum of all incomes of the current period.
func TotalIncome(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("incomes").
		Where("deleted_at IS NULL").
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing incomes failed: %w", err)
	}

	return sum.Decimal, nil
}

// ClearIncomes hard-deletes every income of the current period.
func ClearIncomes(db *gorm.DB) error {
	return db.Unscoped().Where("true").Delete(&Income{}).Error
}
