package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring expenses
// with the RouterGroup that is passed.
func RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringExpenseList)
		r.GET("", GetRecurringExpenses)
		r.POST("", CreateRecurringExpenses)
	}

	// RecurringExpense with ID
	{
		r.OPTIONS("/:id", OptionsRecurringExpenseDetail)
		r.GET("/:id", GetRecurringExpense)
		r.PATCH("/:id", UpdateRecurringExpense)
		r.DELETE("/:id", DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.RecurringExpense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring expenses
// @Description	Creates new recurring expense templates
// @Tags			RecurringExpenses
// @Produce		json
// @Success		201					{object}	RecurringExpenseCreateResponse
// @Failure		400					{object}	RecurringExpenseCreateResponse
// @Failure		404					{object}	RecurringExpenseCreateResponse
// @Failure		500					{object}	RecurringExpenseCreateResponse
// @Param			recurringExpenses	body		[]RecurringExpenseEditable	true	"RecurringExpenses"
// @Router			/v1/recurring-expenses [post]
func CreateRecurringExpenses(c *gin.Context) {
	var editables []RecurringExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecurringExpenseCreateResponse{}

	for _, editable := range editables {
		recurringExpense := editable.model()

		err = models.DB.Create(&recurringExpense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecurringExpense(c.GetString(string(models.DBContextURL)), recurringExpense)
		r.Data = append(r.Data, RecurringExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get recurring expenses
// @Description	Returns a list of recurring expense templates
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		400	{object}	RecurringExpenseListResponse
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			recurrence	query	string	false	"Filter by recurrence"
// @Param			active		query	bool	false	"Is the template active?"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first RecurringExpense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of RecurringExpenses to return. Defaults to 50."
func GetRecurringExpenses(c *gin.Context) {
	var filter RecurringExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 RecurringExpenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var recurringExpenses []models.RecurringExpense
	err := q.Find(&recurringExpenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]RecurringExpense, 0, len(recurringExpenses))
	for _, recurringExpense := range recurringExpenses {
		data = append(data, newRecurringExpense(url, recurringExpense))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense template
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Failure		500	{object}	RecurringExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [get]
func GetRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var recurringExpense models.RecurringExpense
	err = models.DB.First(&recurringExpense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newRecurringExpense(c.GetString(string(models.DBContextURL)), recurringExpense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Update recurring expense
// @Description	Update an existing recurring expense template. Only values to be updated need to be specified.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		200					{object}	RecurringExpenseResponse
// @Failure		400					{object}	RecurringExpenseResponse
// @Failure		404					{object}	RecurringExpenseResponse
// @Failure		500					{object}	RecurringExpenseResponse
// @Param			id					path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recurringExpense	body		RecurringExpenseEditable	true	"RecurringExpense"
// @Router			/v1/recurring-expenses/{id} [patch]
func UpdateRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var recurringExpense models.RecurringExpense
	err = models.DB.First(&recurringExpense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var data RecurringExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&recurringExpense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringExpense(c.GetString(string(models.DBContextURL)), recurringExpense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &r})
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense template. Already materialized expenses are kept.
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [delete]
func DeleteRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var recurringExpense models.RecurringExpense
	err = models.DB.First(&recurringExpense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&recurringExpense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
