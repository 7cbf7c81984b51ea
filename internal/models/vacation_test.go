package models_test

import (
	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestVacationEndBeforeStart() {
	vacation := models.Vacation{
		Name:  "Lappi",
		Start: date(2024, 2, 18),
		End:   date(2024, 2, 12),
	}

	err := models.DB.Create(&vacation).Error
	assert.ErrorIs(suite.T(), err, models.ErrVacationEndBeforeStart)
}

func (suite *TestSuiteStandard) TestVacationSpent() {
	category := suite.createTestCategory(models.Category{Name: "Vapaa-aika"})

	vacation := suite.createTestVacation(models.Vacation{
		Name:  "Lappi",
		Start: date(2024, 2, 12),
		End:   date(2024, 2, 18),
	})

	suite.createTestExpense(models.Expense{Date: date(2024, 2, 12), Amount: decimal.NewFromFloat(120), CategoryID: category.ID})
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 18), Amount: decimal.NewFromFloat(64.52), CategoryID: category.ID})

	// Outside of the vacation
	suite.createTestExpense(models.Expense{Date: date(2024, 2, 19), Amount: decimal.NewFromFloat(200), CategoryID: category.ID})

	spent, err := vacation.Spent(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(184.52)), "vacation spent is %s, should be 184.52", spent)
}

func (suite *TestSuiteStandard) TestVacationSpentEmpty() {
	vacation := suite.createTestVacation(models.Vacation{
		Name:  "Lappi",
		Start: date(2024, 2, 12),
		End:   date(2024, 2, 18),
	})

	spent, err := vacation.Spent(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.IsZero())
}
