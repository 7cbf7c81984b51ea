package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kukkaro/backend/internal/httputil"
	"github.com/kukkaro/backend/internal/models"
)

// ReminderSettingsEditable represents all values of the payday reminder
// configuration that can be updated by the API
type ReminderSettingsEditable struct {
	Payday     int `json:"payday" example:"15"`    // Day of the month the income arrives
	DaysBefore int `json:"daysBefore" example:"2"` // How many days before payday to remind
}

// ReminderSettings is the API representation of the payday reminder
// configuration
type ReminderSettings struct {
	models.DefaultModel
	ReminderSettingsEditable
}

func newReminderSettings(model models.ReminderSettings) ReminderSettings {
	return ReminderSettings{
		DefaultModel: model.DefaultModel,
		ReminderSettingsEditable: ReminderSettingsEditable{
			Payday:     model.Payday,
			DaysBefore: model.DaysBefore,
		},
	}
}

type ReminderSettingsResponse struct {
	Data  *ReminderSettings `json:"data"`                                          // The reminder configuration, null when none has been saved
	Error *string           `json:"error" example:"payday must be between 1 and 31"` // The error, if one occurred
}

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/reminder", OptionsReminderSettings)
	r.GET("/reminder", GetReminderSettings)
	r.PATCH("/reminder", UpdateReminderSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/reminder [options]
func OptionsReminderSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get reminder settings
// @Description	Returns the payday reminder configuration. The data is null when no configuration has been saved yet.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	ReminderSettingsResponse
// @Failure		500	{object}	ReminderSettingsResponse
// @Router			/v1/settings/reminder [get]
func GetReminderSettings(c *gin.Context) {
	settings, err := models.GetReminderSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderSettingsResponse{
			Error: &s,
		})
		return
	}

	if settings == nil {
		c.JSON(http.StatusOK, ReminderSettingsResponse{})
		return
	}

	data := newReminderSettings(*settings)
	c.JSON(http.StatusOK, ReminderSettingsResponse{Data: &data})
}

// @Summary		Update reminder settings
// @Description	Replaces the payday reminder configuration
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReminderSettingsResponse
// @Failure		400			{object}	ReminderSettingsResponse
// @Failure		500			{object}	ReminderSettingsResponse
// @Param			settings	body		ReminderSettingsEditable	true	"Reminder settings"
// @Router			/v1/settings/reminder [patch]
func UpdateReminderSettings(c *gin.Context) {
	var editable ReminderSettingsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderSettingsResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.UpsertReminderSettings(models.DB, editable.Payday, editable.DaysBefore)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderSettingsResponse{
			Error: &s,
		})
		return
	}

	data := newReminderSettings(*settings)
	c.JSON(http.StatusOK, ReminderSettingsResponse{Data: &data})
}
