package models

import (
	"time"

	"github.com/kukkaro/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the single active budget period.
//
// At most one row exists at any time. The period is identified externally by
// the month its start date falls into, see PeriodID.
type BudgetPeriod struct {
	DefaultModel
	Start       time.Time
	End         time.Time
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// PeriodID returns the month derived from the period's start date. Its string
// form is the storage key for history snapshots.
func (p BudgetPeriod) PeriodID() types.Month {
	return types.MonthOf(p.Start)
}

func (p *BudgetPeriod) BeforeSave(_ *gorm.DB) error {
	p.Start = truncateToDay(p.Start)
	p.End = truncateToDay(p.End)

	if p.End.Before(p.Start) {
		return ErrPeriodEndBeforeStart
	}

	return nil
}

// truncateToDay drops the time-of-day part. All period, expense and vacation
// dates are stored with day precision so that inclusive range queries work.
func truncateToDay(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentPeriod returns the active budget period. It returns nil without an
// error when no period has been started, callers treat this as a legitimate
// state.
func CurrentPeriod(db *gorm.DB) (*BudgetPeriod, error) {
	var period BudgetPeriod

	err := db.Order("created_at DESC").First(&period).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &period, nil
}

// SetCurrentPeriod unconditionally replaces the active period record.
func SetCurrentPeriod(db *gorm.DB, period *BudgetPeriod) error {
	err := ClearCurrentPeriod(db)
	if err != nil {
		return err
	}

	return db.Create(period).Error
}

// ClearCurrentPeriod hard-deletes the active period record.
func ClearCurrentPeriod(db *gorm.DB) error {
	return db.Unscoped().Where("true").Delete(&BudgetPeriod{}).Error
}

// StartPeriod performs the rollover from the active period to next.
//
// The steps are keyed by the outgoing period's id and each one is idempotent,
// so a rollover that failed halfway converges when it is re-run instead of
// duplicating archive rows or materialized expenses. There is no cross-step
// transaction: completed steps stay in place when a later one fails.
func StartPeriod(db *gorm.DB, next BudgetPeriod) (*BudgetPeriod, error) {
	current, err := CurrentPeriod(db)
	if err != nil {
		return nil, err
	}

	// When the active period already is next, an earlier attempt got past
	// the period switch. Archiving again would snapshot the new period
	// under its own id, so only the steps after the switch are re-run.
	retry := current != nil && current.PeriodID().Equal(next.PeriodID())

	if current != nil && !retry {
		err = archivePeriod(db, *current)
		if err != nil {
			return nil, err
		}

		err = resetAllocations(db)
		if err != nil {
			return nil, err
		}
	}

	if !retry {
		err = ClearIncomes(db)
		if err != nil {
			return nil, err
		}
	}

	err = SetCurrentPeriod(db, &next)
	if err != nil {
		return nil, err
	}

	err = materializeRecurringExpenses(db, next.PeriodID())
	if err != nil {
		return nil, err
	}

	return &next, nil
}

// resetAllocations zeroes the allocation of every category for the new
// period. Rollup rows are already zero by construction.
func resetAllocations(db *gorm.DB) error {
	return db.Session(&gorm.Session{SkipHooks: true}).
		Model(&Category{}).
		Where("computed_total = ?", false).
		Update("allocated", decimal.Zero).Error
}

// materializeRecurringExpenses creates one expense per active recurring
// expense template for the given period. Templates that already have an
// expense for the period are skipped.
func materializeRecurringExpenses(db *gorm.DB, period types.Month) error {
	templates, err := ActiveRecurringExpenses(db)
	if err != nil {
		return err
	}

	for _, template := range templates {
		created, err := template.Materialize(db, period)
		if err != nil {
			return err
		}

		if !created {
			log.Debug().
				Str("recurringExpense", template.ID.String()).
				Str("period", period.String()).
				Msg("already materialized, skipping")
		}
	}

	return nil
}
