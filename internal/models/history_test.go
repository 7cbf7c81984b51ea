package models_test

import (
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rolloverTestData archives a February period with a small category tree and
// one income, leaving March as the current period.
func (suite *TestSuiteStandard) rolloverTestData() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start:       date(2024, 2, 1),
		End:         date(2024, 2, 29),
		TotalAmount: decimal.NewFromFloat(2000),
	})

	suite.createTestIncome(models.Income{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	main := suite.createTestCategory(models.Category{Name: "Ruoka"})
	suite.createTestCategory(models.Category{
		Name:      "Ruokakauppa",
		ParentID:  &main.ID,
		Allocated: decimal.NewFromFloat(300),
	})
	suite.createTestCategory(models.Category{
		Name:          "Yhteensä",
		ParentID:      &main.ID,
		ComputedTotal: true,
	})

	_, err := models.StartPeriod(models.DB, models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})
	require.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestHistoryForMissing() {
	period, err := models.HistoryFor(models.DB, types.NewMonth(2020, time.January))
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), period)
}

func (suite *TestSuiteStandard) TestHistoryMonthsOrder() {
	suite.createTestPeriod(models.BudgetPeriod{
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 31),
	})

	_, err := models.StartPeriod(models.DB, models.BudgetPeriod{
		Start: date(2024, 2, 1),
		End:   date(2024, 2, 29),
	})
	require.Nil(suite.T(), err)

	_, err = models.StartPeriod(models.DB, models.BudgetPeriod{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})
	require.Nil(suite.T(), err)

	months, err := models.HistoryMonths(models.DB)
	require.Nil(suite.T(), err)

	// Newest first
	assert.Equal(suite.T(), []types.Month{types.NewMonth(2024, time.February), types.NewMonth(2024, time.January)}, months)
}

func (suite *TestSuiteStandard) TestHistorySnapshotShape() {
	suite.rolloverTestData()

	categories, err := models.HistoryCategories(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 3)

	// Main categories first
	assert.True(suite.T(), categories[0].IsMain())
	assert.Equal(suite.T(), "Ruoka", categories[0].Name)

	for _, category := range categories[1:] {
		assert.Equal(suite.T(), "Ruoka", category.ParentName)
	}

	incomes, err := models.HistoryIncomes(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), incomes, 1)
	assert.True(suite.T(), incomes[0].Amount.Equal(decimal.NewFromFloat(2000)))
}

func (suite *TestSuiteStandard) TestDeletePeriod() {
	suite.rolloverTestData()

	err := models.DeletePeriod(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)

	period, err := models.HistoryFor(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), period)

	// The nested snapshots are deleted with the period
	var count int64
	require.Nil(suite.T(), models.DB.Unscoped().Model(&models.HistoryCategory{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	require.Nil(suite.T(), models.DB.Unscoped().Model(&models.HistoryIncome{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestDeletePeriodMissing() {
	err := models.DeletePeriod(models.DB, types.NewMonth(2020, time.January))
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCopyCategoriesFromPeriod() {
	suite.rolloverTestData()

	// Start from an empty tree, the copy recreates it from the archive. The
	// new period has no income yet, the copy must restore the archived
	// allocations regardless.
	require.Nil(suite.T(), models.DB.Unscoped().Where("true").Delete(&models.Category{}).Error)

	total, err := models.TotalIncome(models.DB)
	require.Nil(suite.T(), err)
	require.True(suite.T(), total.IsZero())

	err = models.CopyCategoriesFromPeriod(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)

	var sub models.Category
	require.Nil(suite.T(), models.DB.Where("name = ?", "Ruokakauppa").First(&sub).Error)
	assert.True(suite.T(), sub.Allocated.Equal(decimal.NewFromFloat(300)), "allocation was not restored, is %s", sub.Allocated)

	var rollup models.Category
	require.Nil(suite.T(), models.DB.Where("name = ?", "Yhteensä").First(&rollup).Error)
	assert.True(suite.T(), rollup.ComputedTotal)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(3), count)
}

func (suite *TestSuiteStandard) TestCopyCategoriesLeavesExisting() {
	suite.rolloverTestData()

	// All categories from the archived period still exist, nothing is
	// duplicated and nothing is overwritten
	err := models.CopyCategoriesFromPeriod(models.DB, types.NewMonth(2024, time.February))
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(3), count)

	// The rollover reset stays in effect for existing categories
	var sub models.Category
	require.Nil(suite.T(), models.DB.Where("name = ?", "Ruokakauppa").First(&sub).Error)
	assert.True(suite.T(), sub.Allocated.IsZero())
}

func (suite *TestSuiteStandard) TestCopyCategoriesMissingPeriod() {
	err := models.CopyCategoriesFromPeriod(models.DB, types.NewMonth(2020, time.January))
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
