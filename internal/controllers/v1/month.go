package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
)

// MonthResponse is the aggregated overview for the current budget period
type MonthResponse struct {
	Data  *models.MonthOverview `json:"data"`                                                            // The month overview
	Error *string               `json:"error" example:"there is no budget period currently configured"` // The error, if one occurred
}

// RegisterMonthRoutes registers the routes for the month overview with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonths)
	r.GET("", GetMonths)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month overview
// @Description	Returns income, allocation and spending totals for the current budget period, grouped by category
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current budget period. Use the history endpoints for archived months."
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	var query QueryMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	period, err := models.CurrentPeriod(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	if period == nil {
		s := models.ErrNoCurrentPeriod.Error()
		c.JSON(http.StatusNotFound, MonthResponse{
			Error: &s,
		})
		return
	}

	// An explicit month has to match the current period. Archived months
	// are served from /v1/history.
	if !query.Month.IsZero() && !types.MonthOf(query.Month).Equal(period.PeriodID()) {
		s := errNoOverviewForMonth.Error()
		c.JSON(http.StatusNotFound, MonthResponse{
			Error: &s,
		})
		return
	}

	overview, err := models.Overview(models.DB, *period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &overview})
}
