package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", Get)
		r.DELETE("", Cleanup)
		r.OPTIONS("", Options)
	}

	RegisterPeriodRoutes(r.Group("/period"))
	RegisterHistoryRoutes(r.Group("/history"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterIncomeRoutes(r.Group("/incomes"))
	RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterRecurringExpenseRoutes(r.Group("/recurring-expenses"))
	RegisterGoalRoutes(r.Group("/goals"))
	RegisterVacationRoutes(r.Group("/vacations"))
	RegisterMonthRoutes(r.Group("/months"))
	RegisterSettingsRoutes(r.Group("/settings"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Period            string `json:"period" example:"https://example.com/api/v1/period"`                        // URL of the budget period endpoint
	History           string `json:"history" example:"https://example.com/api/v1/history"`                      // URL of the history collection endpoint
	Categories        string `json:"categories" example:"https://example.com/api/v1/categories"`                // URL of the Category collection endpoint
	Incomes           string `json:"incomes" example:"https://example.com/api/v1/incomes"`                      // URL of the Income collection endpoint
	Expenses          string `json:"expenses" example:"https://example.com/api/v1/expenses"`                    // URL of the Expense collection endpoint
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // URL of the RecurringExpense collection endpoint
	Goals             string `json:"goals" example:"https://example.com/api/v1/goals"`                          // URL of the Goal collection endpoint
	Vacations         string `json:"vacations" example:"https://example.com/api/v1/vacations"`                  // URL of the Vacation collection endpoint
	Months            string `json:"months" example:"https://example.com/api/v1/months"`                        // URL of the Month endpoint
	Settings          string `json:"settings" example:"https://example.com/api/v1/settings"`                    // URL of the Settings endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Period:            url + "/v1/period",
			History:           url + "/v1/history",
			Categories:        url + "/v1/categories",
			Incomes:           url + "/v1/incomes",
			Expenses:          url + "/v1/expenses",
			RecurringExpenses: url + "/v1/recurring-expenses",
			Goals:             url + "/v1/goals",
			Vacations:         url + "/v1/vacations",
			Months:            url + "/v1/months",
			Settings:          url + "/v1/settings",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
