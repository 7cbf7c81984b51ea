package v1_test

import (
	"net/http"

	v1 "github.com/kukkaro/backend/internal/controllers/v1"
	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCleanup() {
	setTestPeriod(suite.T(), v1.PeriodEditable{})
	createTestIncome(suite.T(), v1.IncomeEditable{Amount: decimal.NewFromFloat(2000)})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	createTestExpense(suite.T(), v1.ExpenseEditable{CategoryID: category.Data.ID})
	createTestGoal(suite.T(), v1.GoalEditable{})
	createTestVacation(suite.T(), v1.VacationEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for name, model := range map[string]any{
		"BudgetPeriod": &models.BudgetPeriod{},
		"Category":     &models.Category{},
		"Income":       &models.Income{},
		"Expense":      &models.Expense{},
		"Goal":         &models.Goal{},
		"Vacation":     &models.Vacation{},
	} {
		var count int64
		require.Nil(suite.T(), models.DB.Unscoped().Model(model).Count(&count).Error)
		assert.Equal(suite.T(), int64(0), count, "%s resources are left in the database", name)
	}
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	createTestCategory(suite.T(), v1.CategoryEditable{})

	for _, confirm := range []string{"", "yes-please-delete-my-data", "confirm"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm="+confirm, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
