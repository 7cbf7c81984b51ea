package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vacation is a named date range, independent of budget periods. It only
// exists to compute a spend total over its range.
type Vacation struct {
	DefaultModel
	Name  string
	Start time.Time
	End   time.Time
}

func (v *Vacation) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Start = truncateToDay(v.Start)
	v.End = truncateToDay(v.End)

	if v.End.Before(v.Start) {
		return ErrVacationEndBeforeStart
	}

	return nil
}

// Spent returns the sum of all expenses dated within the vacation.
func (v Vacation) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("expenses").
		Where("deleted_at IS NULL").
		Where("date >= ? AND date <= ?", v.Start, v.End).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing vacation expenses failed: %w", err)
	}

	return sum.Decimal, nil
}
