package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is an independent savings goal. Goals are not scoped to budget
// periods and survive rollover untouched.
type Goal struct {
	DefaultModel
	Name          string
	Note          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Saved         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Start         time.Time
	Deadline      time.Time
	MonthlyAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	// The stored monthly amount is computed once at creation and clamped to
	// zero for deadlines in the past. MonthlyAmountAt stays unclamped for
	// callers that recompute.
	monthly := g.MonthlyAmountAt(g.Start)
	if monthly.IsNegative() {
		monthly = decimal.Zero
	}
	g.MonthlyAmount = monthly

	return nil
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)
	g.Start = truncateToDay(g.Start)
	g.Deadline = truncateToDay(g.Deadline)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}

// MonthsRemaining returns the number of months from the month of at to the
// month of the deadline, both inclusive. The count is negative for deadlines
// in the past.
func (g Goal) MonthsRemaining(at time.Time) int {
	deadline := g.Deadline.Year()*12 + int(g.Deadline.Month())
	current := at.Year()*12 + int(at.Month())

	return deadline - current + 1
}

// MonthlyAmountAt returns the amount that has to be saved per month from the
// month of at to reach the target by the deadline. The result is not clamped.
func (g Goal) MonthlyAmountAt(at time.Time) decimal.Decimal {
	months := g.MonthsRemaining(at)
	if months == 0 {
		return decimal.Zero
	}

	return g.TargetAmount.Div(decimal.NewFromInt(int64(months)))
}
