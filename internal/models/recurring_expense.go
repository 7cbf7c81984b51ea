package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recurrence is the cadence of a recurring expense template.
type Recurrence string

const (
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// RecurringExpense is a template for a bill that recurs. It is not itself a
// transaction: every rollover materializes each active template into one
// concrete expense.
type RecurringExpense struct {
	DefaultModel
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CategoryID uuid.UUID
	Category   Category `json:"-"`
	DueDate    time.Time
	Recurrence Recurrence
	Active     bool
}

func (r *RecurringExpense) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*RecurringExpense)
	return tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
}

func (r *RecurringExpense) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(RecurringExpense)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("CategoryID") {
		return tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
	}

	return nil
}

func (r *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.DueDate = truncateToDay(r.DueDate)

	if r.Recurrence != RecurrenceWeekly && r.Recurrence != RecurrenceMonthly {
		return ErrRecurrenceInvalid
	}

	return nil
}

// ActiveRecurringExpenses returns all active templates.
func ActiveRecurringExpenses(db *gorm.DB) ([]RecurringExpense, error) {
	var templates []RecurringExpense

	err := db.
		Where(&RecurringExpense{Active: true}).
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}

	return templates, nil
}

// Materialize creates the expense for the template and the given period.
// It reports false without an error when the expense already exists, so that
// a repeated rollover does not duplicate it.
//
// The expense is dated at the template's due date. The due date is not
// advanced, deactivating the template is the only way to stop it from being
// materialized again.
func (r RecurringExpense) Materialize(db *gorm.DB, period types.Month) (bool, error) {
	var count int64
	err := db.Model(&Expense{}).
		Where("recurring_expense_id = ? AND period = ?", r.ID, period).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	expense := Expense{
		Date:               r.DueDate,
		Amount:             r.Amount,
		Description:        r.Name,
		CategoryID:         r.CategoryID,
		RecurringExpenseID: &r.ID,
		Period:             period,
	}

	err = db.Create(&expense).Error
	if err != nil {
		return false, err
	}

	return true, nil
}
