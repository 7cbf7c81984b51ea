package models_test

import (
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseCategoryMustExist() {
	expense := models.Expense{
		Amount:      decimal.NewFromFloat(12.5),
		Description: "Kahvi",
	}

	err := models.DB.Create(&expense).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDateDefaultsToToday() {
	category := suite.createTestCategory(models.Category{Name: "Ruoka"})

	expense := suite.createTestExpense(models.Expense{
		Amount:     decimal.NewFromFloat(12.5),
		CategoryID: category.ID,
	})

	now := time.Now().In(time.UTC)
	assert.Equal(suite.T(), time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), expense.Date)
}

func (suite *TestSuiteStandard) TestExpensesInRange() {
	category := suite.createTestCategory(models.Category{Name: "Ruoka"})

	inRange := suite.createTestExpense(models.Expense{
		Date:       date(2024, 2, 14),
		Amount:     decimal.NewFromFloat(54.12),
		CategoryID: category.ID,
	})

	// Range bounds are inclusive
	onBound := suite.createTestExpense(models.Expense{
		Date:       date(2024, 2, 29),
		Amount:     decimal.NewFromFloat(8.9),
		CategoryID: category.ID,
	})

	suite.createTestExpense(models.Expense{
		Date:       date(2024, 3, 1),
		Amount:     decimal.NewFromFloat(100),
		CategoryID: category.ID,
	})

	expenses, err := models.ExpensesInRange(models.DB, date(2024, 2, 1), date(2024, 2, 29))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 2)

	// Ordered by date descending
	assert.Equal(suite.T(), onBound.ID, expenses[0].ID)
	assert.Equal(suite.T(), inRange.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestSpentByCategory() {
	food := suite.createTestCategory(models.Category{Name: "Ruoka"})
	housing := suite.createTestCategory(models.Category{Name: "Asuminen"})
	unused := suite.createTestCategory(models.Category{Name: "Vapaa-aika"})

	suite.createTestExpense(models.Expense{Date: date(2024, 2, 3), Amount: decimal.NewFromFloat(20), CategoryID: food.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 10), Amount: decimal.NewFromFloat(34.5), CategoryID: food.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 1), Amount: decimal.NewFromFloat(950), CategoryID: housing.ID})

	// Outside of the range
	suite.createTestExpense(models.Expense{Date: date(2024, 3, 3), Amount: decimal.NewFromFloat(999), CategoryID: food.ID})

	spent, err := models.SpentByCategory(models.DB, date(2024, 2, 1), date(2024, 2, 29))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), spent[food.ID].Equal(decimal.NewFromFloat(54.5)))
	assert.True(suite.T(), spent[housing.ID].Equal(decimal.NewFromFloat(950)))

	_, ok := spent[unused.ID]
	assert.False(suite.T(), ok, "categories without expenses must not have an entry")
}
