package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
)

// RegisterPeriodRoutes registers the routes for the budget period with
// the RouterGroup that is passed.
func RegisterPeriodRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPeriod)
		r.GET("", GetPeriod)
		r.PUT("", PutPeriod)
		r.DELETE("", DeletePeriod)
	}

	{
		r.OPTIONS("/rollover", OptionsRollover)
		r.POST("/rollover", Rollover)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Period
// @Success		204
// @Router			/v1/period [options]
func OptionsPeriod(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Period
// @Success		204
// @Router			/v1/period/rollover [options]
func OptionsRollover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get period
// @Description	Returns the currently active budget period. The data field is null when no period is active.
// @Tags			Period
// @Produce		json
// @Success		200	{object}	PeriodResponse
// @Failure		500	{object}	PeriodResponse
// @Router			/v1/period [get]
func GetPeriod(c *gin.Context) {
	period, err := models.CurrentPeriod(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	if period == nil {
		c.JSON(http.StatusOK, PeriodResponse{})
		return
	}

	data := newPeriod(c.GetString(string(models.DBContextURL)), *period)
	c.JSON(http.StatusOK, PeriodResponse{Data: &data})
}

// @Summary		Set period
// @Description	Replaces the currently active budget period without archiving it. Use the rollover endpoint to archive first.
// @Tags			Period
// @Accept			json
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			period	body		PeriodEditable	true	"Period"
// @Router			/v1/period [put]
func PutPeriod(c *gin.Context) {
	var editable PeriodEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	period := editable.model()
	err = models.SetCurrentPeriod(models.DB, &period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	data := newPeriod(c.GetString(string(models.DBContextURL)), period)
	c.JSON(http.StatusOK, PeriodResponse{Data: &data})
}

// @Summary		Delete period
// @Description	Deletes the currently active budget period without archiving it
// @Tags			Period
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/period [delete]
func DeletePeriod(c *gin.Context) {
	err := models.ClearCurrentPeriod(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Roll over to a new period
// @Description	Archives the current period into the history, clears incomes and allocations, starts the passed period and materializes active recurring expenses into it. All steps are idempotent, a failed rollover can be retried.
// @Tags			Period
// @Accept			json
// @Produce		json
// @Success		201		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			period	body		PeriodEditable	true	"The period to start"
// @Router			/v1/period/rollover [post]
func Rollover(c *gin.Context) {
	var editable PeriodEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	period, err := models.StartPeriod(models.DB, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	data := newPeriod(c.GetString(string(models.DBContextURL)), *period)
	c.JSON(http.StatusCreated, PeriodResponse{Data: &data})
}
