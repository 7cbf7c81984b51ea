package models_test

import (
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOverviewEmpty() {
	period := suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	overview, err := models.Overview(models.DB, period)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), types.NewMonth(2024, time.February), overview.Period)
	assert.Equal(suite.T(), "01.02-29.02.2024", overview.PeriodLabel)
	assert.True(suite.T(), overview.Income.IsZero())
	assert.True(suite.T(), overview.Allocated.IsZero())
	assert.NotNil(suite.T(), overview.Categories)
	assert.Empty(suite.T(), overview.Categories)
}

func (suite *TestSuiteStandard) TestOverview() {
	period := suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	suite.createTestIncome(models.Income{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	food := suite.createTestCategory(models.Category{Name: "Ruoka"})
	groceries := suite.createTestCategory(models.Category{
		Name:      "Ruokakauppa",
		ParentID:  &food.ID,
		Allocated: decimal.NewFromFloat(300),
	})
	restaurants := suite.createTestCategory(models.Category{
		Name:      "Ravintolat",
		ParentID:  &food.ID,
		Allocated: decimal.NewFromFloat(100),
	})
	suite.createTestCategory(models.Category{
		Name:          "Yhteensä",
		ParentID:      &food.ID,
		ComputedTotal: true,
	})

	// A main category without children counts its own allocation
	rent := suite.createTestCategory(models.Category{
		Name:      "Vuokra",
		Allocated: decimal.NewFromFloat(950),
	})

	suite.createTestExpense(models.Expense{Date: date(2024, 2, 3), Amount: decimal.NewFromFloat(54.5), CategoryID: groceries.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 10), Amount: decimal.NewFromFloat(30), CategoryID: restaurants.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 1), Amount: decimal.NewFromFloat(950), CategoryID: rent.ID})

	// Outside of the period, must not be counted
	suite.createTestExpense(models.Expense{Date: date(2024, 3, 1), Amount: decimal.NewFromFloat(999), CategoryID: groceries.ID})

	overview, err := models.Overview(models.DB, period)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), overview.Income.Equal(decimal.NewFromFloat(2000)))
	assert.True(suite.T(), overview.Allocated.Equal(decimal.NewFromFloat(1350)), "allocated is %s, should be 1350", overview.Allocated)
	assert.True(suite.T(), overview.Spent.Equal(decimal.NewFromFloat(1034.5)), "spent is %s, should be 1034.5", overview.Spent)
	assert.True(suite.T(), overview.Remaining.Equal(decimal.NewFromFloat(315.5)))

	// Ordered by name: Ruoka, Vuokra
	require.Len(suite.T(), overview.Categories, 2)

	foodRow := overview.Categories[0]
	assert.Equal(suite.T(), "Ruoka", foodRow.Name)
	assert.True(suite.T(), foodRow.Allocated.Equal(decimal.NewFromFloat(400)), "food allocation is %s, should be 400", foodRow.Allocated)
	assert.True(suite.T(), foodRow.Spent.Equal(decimal.NewFromFloat(84.5)))
	require.Len(suite.T(), foodRow.SubCategories, 3)

	// The rollup row mirrors the parent's rolled up figures
	for _, sub := range foodRow.SubCategories {
		if !sub.ComputedTotal {
			continue
		}

		assert.Equal(suite.T(), "Yhteensä", sub.Name)
		assert.True(suite.T(), sub.Allocated.Equal(foodRow.Allocated))
		assert.True(suite.T(), sub.Spent.Equal(foodRow.Spent))
		assert.True(suite.T(), sub.Remaining.Equal(foodRow.Remaining))
	}

	rentRow := overview.Categories[1]
	assert.Equal(suite.T(), "Vuokra", rentRow.Name)
	assert.True(suite.T(), rentRow.Allocated.Equal(decimal.NewFromFloat(950)))
	assert.True(suite.T(), rentRow.Spent.Equal(decimal.NewFromFloat(950)))
	assert.True(suite.T(), rentRow.Remaining.IsZero())
	assert.Empty(suite.T(), rentRow.SubCategories)
}

func (suite *TestSuiteStandard) TestOverviewSpentOnMainWithChildren() {
	period := suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})

	main := suite.createTestCategory(models.Category{Name: "Ruoka"})
	sub := suite.createTestCategory(models.Category{Name: "Ruokakauppa", ParentID: &main.ID})

	// Expenses booked directly on the main category count towards its rollup
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 5), Amount: decimal.NewFromFloat(10), CategoryID: main.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 6), Amount: decimal.NewFromFloat(20), CategoryID: sub.ID})

	overview, err := models.Overview(models.DB, period)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), overview.Categories, 1)
	assert.True(suite.T(), overview.Categories[0].Spent.Equal(decimal.NewFromFloat(30)))
}
