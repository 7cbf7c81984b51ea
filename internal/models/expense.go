package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a dated ledger entry.
//
// Expenses are not scoped to a budget period by a foreign key. Period
// membership is inferred from the date falling into the period's range at
// query time. Rollover never archives or deletes expenses.
//
// An expense created from a recurring expense template carries the template
// id and the period it was materialized for. The pair is unique, which makes
// materialization idempotent per period.
type Expense struct {
	DefaultModel
	Date               time.Time
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description        string
	CategoryID         uuid.UUID
	Category           Category    `json:"-"`
	RecurringExpenseID *uuid.UUID  `gorm:"uniqueIndex:expense_recurring_period"`
	Period             types.Month `gorm:"uniqueIndex:expense_recurring_period"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Expense)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("CategoryID") {
		return tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
	}

	return nil
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	}
	e.Date = truncateToDay(e.Date)

	return nil
}

func (e *Expense) AfterFind(tx *gorm.DB) error {
	_ = e.DefaultModel.AfterFind(tx)

	e.Date = e.Date.In(time.UTC)
	return nil
}

// ExpensesInRange returns all expenses dated within [from, to], both
// inclusive, ordered by date descending.
func ExpensesInRange(db *gorm.DB, from, to time.Time) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where("date >= ? AND date <= ?", truncateToDay(from), truncateToDay(to)).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// SpentByCategory sums the expenses dated within [from, to] per category.
// Categories without expenses in the range have no entry in the map.
func SpentByCategory(db *gorm.DB, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	rows, err := db.Model(&Expense{}).
		Select("category_id, SUM(amount)").
		Where("date >= ? AND date <= ?", truncateToDay(from), truncateToDay(to)).
		Group("category_id").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("summing expenses per category failed: %w", err)
	}
	defer rows.Close()

	spent := make(map[uuid.UUID]decimal.Decimal)
	for rows.Next() {
		var id uuid.UUID
		var sum decimal.NullDecimal

		err := rows.Scan(&id, &sum)
		if err != nil {
			return nil, fmt.Errorf("summing expenses per category failed: %w", err)
		}

		spent[id] = sum.Decimal
	}

	return spent, rows.Err()
}
