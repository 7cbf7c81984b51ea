package models_test

import (
	"strings"
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrGoalAmountNotPositive},
		{decimal.Zero, models.ErrGoalAmountNotPositive},
		{decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		goal := models.Goal{
			Name:         "Puskuri",
			TargetAmount: tt.amount,
			Start:        date(2024, 1, 1),
			Deadline:     date(2024, 6, 30),
		}

		err := models.DB.Create(&goal).Error
		assert.ErrorIs(suite.T(), err, tt.err)
	}
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	note := " Whitespace    "
	name := "  There is whitespace here  \t"

	goal := suite.createTestGoal(models.Goal{
		Name:         name,
		Note:         note,
		TargetAmount: decimal.NewFromFloat(100),
		Start:        date(2024, 1, 1),
		Deadline:     date(2024, 6, 30),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}

func (suite *TestSuiteStandard) TestGoalMonthlyAmount() {
	// January to June, both inclusive, is 6 months
	goal := suite.createTestGoal(models.Goal{
		Name:         "Kesäloma",
		TargetAmount: decimal.NewFromFloat(1200),
		Start:        date(2024, 1, 15),
		Deadline:     date(2024, 6, 30),
	})

	assert.True(suite.T(), goal.MonthlyAmount.Equal(decimal.NewFromFloat(200)), "monthly amount is %s, should be 200", goal.MonthlyAmount)
}

func (suite *TestSuiteStandard) TestGoalMonthlyAmountPastDeadline() {
	// The stored amount is clamped to zero when the deadline already passed
	goal := suite.createTestGoal(models.Goal{
		Name:         "Myöhässä",
		TargetAmount: decimal.NewFromFloat(1000),
		Start:        date(2024, 6, 1),
		Deadline:     date(2024, 1, 31),
	})

	assert.True(suite.T(), goal.MonthlyAmount.IsZero())

	// The unclamped computation reports the negative month count
	assert.True(suite.T(), goal.MonthlyAmountAt(goal.Start).IsNegative())
}

func (suite *TestSuiteStandard) TestGoalMonthsRemaining() {
	goal := models.Goal{
		TargetAmount: decimal.NewFromFloat(600),
		Deadline:     date(2024, 6, 30),
	}

	tests := []struct {
		at     time.Time
		months int
	}{
		{date(2024, 1, 10), 6},
		{date(2024, 6, 1), 1},
		{date(2024, 7, 1), 0},
		{date(2024, 8, 20), -1},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.months, goal.MonthsRemaining(tt.at), "wrong month count at %s", tt.at)
	}
}

func (suite *TestSuiteStandard) TestGoalSurvivesRollover() {
	suite.createTestPeriod(models.BudgetPeriod{})
	goal := suite.createTestGoal(models.Goal{Name: "Puskuri"})

	_, err := models.StartPeriod(models.DB, models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})
	assert.Nil(suite.T(), err)

	var reloaded models.Goal
	assert.Nil(suite.T(), models.DB.First(&reloaded, goal.ID).Error)
}
