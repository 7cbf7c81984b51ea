package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
)

// RegisterHistoryRoutes registers the routes for archived periods with
// the RouterGroup that is passed.
func RegisterHistoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHistoryList)
		r.GET("", GetHistory)
	}

	// Archived month
	{
		r.OPTIONS("/:month", OptionsHistoryMonth)
		r.GET("/:month", GetHistoryMonth)
		r.DELETE("/:month", DeleteHistoryMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
func OptionsHistoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/history/{month} [options]
func OptionsHistoryMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidMonth.Error(),
		})
		return
	}

	period, err := models.HistoryFor(models.DB, types.MonthOf(uri.Month))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if period == nil {
		c.JSON(http.StatusNotFound, httpError{
			Error: errNoHistoryForMonth.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		List archived months
// @Description	Returns the metadata of all archived budget periods, newest first
// @Tags			History
// @Produce		json
// @Success		200	{object}	HistoryListResponse
// @Failure		500	{object}	HistoryListResponse
// @Router			/v1/history [get]
func GetHistory(c *gin.Context) {
	var periods []models.HistoryPeriod
	err := models.DB.Order("period DESC").Find(&periods).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryListResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]HistoryMonth, 0, len(periods))
	for _, period := range periods {
		data = append(data, newHistoryMonth(url, period))
	}

	c.JSON(http.StatusOK, HistoryListResponse{Data: data})
}

// @Summary		Get archived month
// @Description	Returns an archived budget period with its category and income snapshots
// @Tags			History
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	HistoryResponse
// @Failure		404		{object}	HistoryResponse
// @Failure		500		{object}	HistoryResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/history/{month} [get]
func GetHistoryMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(uri.Month)

	period, err := models.HistoryFor(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &s,
		})
		return
	}

	if period == nil {
		s := errNoHistoryForMonth.Error()
		c.JSON(http.StatusNotFound, HistoryResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.HistoryCategories(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &s,
		})
		return
	}

	incomes, err := models.HistoryIncomes(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &s,
		})
		return
	}

	detail := HistoryMonthDetail{
		HistoryMonth: newHistoryMonth(c.GetString(string(models.DBContextURL)), *period),
		Categories:   make([]HistoryCategory, 0, len(categories)),
		Incomes:      make([]HistoryIncome, 0, len(incomes)),
	}

	for _, category := range categories {
		detail.Categories = append(detail.Categories, newHistoryCategory(category))
	}

	for _, income := range incomes {
		detail.Incomes = append(detail.Incomes, newHistoryIncome(income))
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: &detail})
}

// @Summary		Delete archived month
// @Description	Deletes an archived budget period with all its snapshots
// @Tags			History
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/history/{month} [delete]
func DeleteHistoryMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidMonth.Error(),
		})
		return
	}

	err = models.DeletePeriod(models.DB, types.MonthOf(uri.Month))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
