package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterVacationRoutes registers the routes for vacations with
// the RouterGroup that is passed.
func RegisterVacationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsVacationList)
		r.GET("", GetVacations)
		r.POST("", CreateVacations)
	}

	// Vacation with ID
	{
		r.OPTIONS("/:id", OptionsVacationDetail)
		r.GET("/:id", GetVacation)
		r.PATCH("/:id", UpdateVacation)
		r.DELETE("/:id", DeleteVacation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vacations
// @Success		204
// @Router			/v1/vacations [options]
func OptionsVacationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vacations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vacations/{id} [options]
func OptionsVacationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Vacation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create vacations
// @Description	Creates new vacations
// @Tags			Vacations
// @Produce		json
// @Success		201			{object}	VacationCreateResponse
// @Failure		400			{object}	VacationCreateResponse
// @Failure		500			{object}	VacationCreateResponse
// @Param			vacations	body		[]VacationEditable	true	"Vacations"
// @Router			/v1/vacations [post]
func CreateVacations(c *gin.Context) {
	var editables []VacationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VacationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := VacationCreateResponse{}

	for _, editable := range editables {
		vacation := editable.model()

		err = models.DB.Create(&vacation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		spent, err := vacation.Spent(models.DB)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newVacation(c.GetString(string(models.DBContextURL)), vacation, spent)
		r.Data = append(r.Data, VacationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get vacations
// @Description	Returns a list of vacations
// @Tags			Vacations
// @Produce		json
// @Success		200	{object}	VacationListResponse
// @Failure		400	{object}	VacationListResponse
// @Failure		500	{object}	VacationListResponse
// @Router			/v1/vacations [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in name"
// @Param			offset	query	uint	false	"The offset of the first Vacation returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Vacations to return. Defaults to 50."
func GetVacations(c *gin.Context) {
	var filter VacationQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("start DESC")

	if slices.Contains(setFields, "Name") {
		if filter.Name != "" {
			q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
		} else {
			q = q.Where("name = ''")
		}
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Vacations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var vacations []models.Vacation
	err := q.Find(&vacations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VacationListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]Vacation, 0, len(vacations))
	for _, vacation := range vacations {
		spent, err := vacation.Spent(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), VacationListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newVacation(url, vacation, spent))
	}

	c.JSON(http.StatusOK, VacationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get vacation
// @Description	Returns a specific vacation with the total spent over its date range
// @Tags			Vacations
// @Produce		json
// @Success		200	{object}	VacationResponse
// @Failure		400	{object}	VacationResponse
// @Failure		404	{object}	VacationResponse
// @Failure		500	{object}	VacationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vacations/{id} [get]
func GetVacation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	var vacation models.Vacation
	err = models.DB.First(&vacation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	spent, err := vacation.Spent(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	data := newVacation(c.GetString(string(models.DBContextURL)), vacation, spent)
	c.JSON(http.StatusOK, VacationResponse{Data: &data})
}

// @Summary		Update vacation
// @Description	Update an existing vacation. Only values to be updated need to be specified.
// @Tags			Vacations
// @Accept			json
// @Produce		json
// @Success		200			{object}	VacationResponse
// @Failure		400			{object}	VacationResponse
// @Failure		404			{object}	VacationResponse
// @Failure		500			{object}	VacationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			vacation	body		VacationEditable	true	"Vacation"
// @Router			/v1/vacations/{id} [patch]
func UpdateVacation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	var vacation models.Vacation
	err = models.DB.First(&vacation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, VacationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	var data VacationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&vacation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	spent, err := vacation.Spent(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VacationResponse{
			Error: &s,
		})
		return
	}

	r := newVacation(c.GetString(string(models.DBContextURL)), vacation, spent)
	c.JSON(http.StatusOK, VacationResponse{Data: &r})
}

// @Summary		Delete vacation
// @Description	Deletes a vacation
// @Tags			Vacations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vacations/{id} [delete]
func DeleteVacation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var vacation models.Vacation
	err = models.DB.First(&vacation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&vacation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
