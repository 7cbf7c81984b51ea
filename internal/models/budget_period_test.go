package models_test

import (
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPeriodEndBeforeStart() {
	period := models.BudgetPeriod{
		Start: date(2024, 2, 29),
		End:   date(2024, 2, 1),
	}

	err := models.DB.Create(&period).Error
	assert.ErrorIs(suite.T(), err, models.ErrPeriodEndBeforeStart)
}

func (suite *TestSuiteStandard) TestPeriodID() {
	period := suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	assert.Equal(suite.T(), "2024-02", period.PeriodID().String())
}

func (suite *TestSuiteStandard) TestCurrentPeriodEmpty() {
	period, err := models.CurrentPeriod(models.DB)
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), period, "current period should be nil when none has been started")
}

func (suite *TestSuiteStandard) TestSetCurrentPeriodReplaces() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.BudgetPeriod{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count, "only one period may exist at any time")

	period, err := models.CurrentPeriod(models.DB)
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), period)
	assert.Equal(suite.T(), types.NewMonth(2024, time.March), period.PeriodID())
}

func (suite *TestSuiteStandard) TestClearCurrentPeriod() {
	suite.createTestPeriod(models.BudgetPeriod{})

	require.Nil(suite.T(), models.ClearCurrentPeriod(models.DB))

	period, err := models.CurrentPeriod(models.DB)
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), period)
}

func (suite *TestSuiteStandard) TestStartPeriodWithoutCurrent() {
	next := models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	}

	period, err := models.StartPeriod(models.DB, next)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), types.NewMonth(2024, time.February), period.PeriodID())

	// Nothing to archive
	months, err := models.HistoryMonths(models.DB)
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), months)
}

func (suite *TestSuiteStandard) TestStartPeriodRollover() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start:       date(2024, 2, 1),
		End:         date(2024, 2, 29),
		TotalAmount: decimal.NewFromFloat(2000),
	})

	suite.createTestIncome(models.Income{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	main := suite.createTestCategory(models.Category{Name: "Ruoka"})
	sub := suite.createTestCategory(models.Category{
		Name:      "Ruokakauppa",
		ParentID:  &main.ID,
		Allocated: decimal.NewFromFloat(300),
	})

	template := suite.createTestRecurringExpense(models.RecurringExpense{
		Name:       "Vuokra",
		Amount:     decimal.NewFromFloat(950),
		CategoryID: sub.ID,
		DueDate:    date(2024, 3, 1),
		Active:     true,
	})

	// Inactive templates are not materialized
	suite.createTestRecurringExpense(models.RecurringExpense{
		Name:       "Lehtitilaus",
		Amount:     decimal.NewFromFloat(15),
		CategoryID: sub.ID,
		Active:     false,
	})

	next := models.BudgetPeriod{
		Start:       date(2024, 3, 1),
		End:         date(2024, 3, 31),
		TotalAmount: decimal.NewFromFloat(2100),
	}

	period, err := models.StartPeriod(models.DB, next)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), types.NewMonth(2024, time.March), period.PeriodID())

	// The outgoing period is archived
	archived, err := models.HistoryFor(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), archived)
	assert.True(suite.T(), archived.TotalAmount.Equal(decimal.NewFromFloat(2000)))

	categories, err := models.HistoryCategories(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 2)

	incomes, err := models.HistoryIncomes(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), incomes, 1)
	assert.Equal(suite.T(), "Palkka", incomes[0].Name)

	// Incomes do not carry over
	total, err := models.TotalIncome(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.IsZero(), "incomes must be cleared on rollover, total is %s", total)

	// Allocations are reset for the new period
	var reloaded models.Category
	require.Nil(suite.T(), models.DB.First(&reloaded, sub.ID).Error)
	assert.True(suite.T(), reloaded.Allocated.IsZero(), "allocation was not reset, is %s", reloaded.Allocated)

	// Exactly one expense per active template
	var expenses []models.Expense
	require.Nil(suite.T(), models.DB.Where("recurring_expense_id = ?", template.ID).Find(&expenses).Error)
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), types.NewMonth(2024, time.March), expenses[0].Period)
	assert.Equal(suite.T(), "Vuokra", expenses[0].Description)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count, "inactive templates must not be materialized")
}

func (suite *TestSuiteStandard) TestStartPeriodIdempotent() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	category := suite.createTestCategory(models.Category{Name: "Asuminen"})
	suite.createTestRecurringExpense(models.RecurringExpense{
		Name:       "Vuokra",
		Amount:     decimal.NewFromFloat(950),
		CategoryID: category.ID,
		DueDate:    date(2024, 3, 1),
		Active:     true,
	})

	next := models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	}

	_, err := models.StartPeriod(models.DB, next)
	require.Nil(suite.T(), err)

	// Re-running the rollover into the same period must not duplicate
	// archive rows or materialized expenses
	_, err = models.StartPeriod(models.DB, next)
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	require.Nil(suite.T(), models.DB.Model(&models.HistoryCategory{}).Where("period = ?", types.NewMonth(2024, time.February)).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	// The new period must not have been archived by the re-run
	archived, err := models.HistoryFor(models.DB, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), archived, "a rollover re-run must not archive the period it starts")
}

func (suite *TestSuiteStandard) TestStartPeriodRetryKeepsNextArchivable() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	march := models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	}

	_, err := models.StartPeriod(models.DB, march)
	require.Nil(suite.T(), err)
	_, err = models.StartPeriod(models.DB, march)
	require.Nil(suite.T(), err)

	// Work done in March after the rollover re-run must survive it and end
	// up in the March archive once April starts
	suite.createTestIncome(models.Income{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})
	suite.createTestCategory(models.Category{Name: "Asuminen", Allocated: decimal.NewFromFloat(500)})

	_, err = models.StartPeriod(models.DB, models.BudgetPeriod{
		Start: date(2024, 4, 1),
		End:   date(2024, 4, 30),
	})
	require.Nil(suite.T(), err)

	categories, err := models.HistoryCategories(models.DB, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 1)
	assert.True(suite.T(), categories[0].Allocated.Equal(decimal.NewFromFloat(500)),
		"March archive holds %s, allocation was 500", categories[0].Allocated)

	incomes, err := models.HistoryIncomes(models.DB, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), incomes, 1)
	assert.Equal(suite.T(), "Palkka", incomes[0].Name)
}

func (suite *TestSuiteStandard) TestPeriodTruncatesToDay() {
	period := suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1).Add(14 * time.Hour),
		End:   date(2024, 2, 29),
	})

	assert.Equal(suite.T(), date(2024, 2, 1), period.Start)
}
