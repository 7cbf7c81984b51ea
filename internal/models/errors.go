package models

import "errors"

var (
	// ErrGeneral is used for internal errors where no more specific information
	// can be given to the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped by the query callback with the name of the
	// resource that was not found.
	ErrResourceNotFound = errors.New("there is no")
)

// isNotFound reports whether the error is the rewritten "no record" error.
func isNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// Budget period errors
var (
	ErrPeriodEndBeforeStart = errors.New("the end of a period cannot be before its start")
	ErrNoCurrentPeriod      = errors.New("no budget period is currently active")
)

// Category errors
var (
	ErrParentNotMain           = errors.New("sub categories can only be added to main categories")
	ErrAllocationExceedsIncome = errors.New("the allocation would exceed the total income of the current period")
	ErrCategoryNameNotUnique   = errors.New("the category name is already in use on this level")
	ErrCategoriesNotEmpty      = errors.New("default categories can only be created when no categories exist")
)

// Recurring expense errors
var ErrRecurrenceInvalid = errors.New("recurrence must be one of 'weekly' or 'monthly'")

// Goal errors
var ErrGoalAmountNotPositive = errors.New("goal target amounts must be larger than zero")

// Vacation errors
var ErrVacationEndBeforeStart = errors.New("the end of a vacation cannot be before its start")

// Reminder settings errors
var (
	ErrPaydayInvalid      = errors.New("the payday must be a day of the month between 1 and 31")
	ErrDaysBeforeNegative = errors.New("the reminder offset cannot be negative")
)
