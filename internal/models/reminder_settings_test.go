package models_test

import (
	"github.com/kukkaro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReminderSettingsValidation() {
	tests := []struct {
		payday     int
		daysBefore int
		err        error
	}{
		{0, 2, models.ErrPaydayInvalid},
		{32, 2, models.ErrPaydayInvalid},
		{15, -1, models.ErrDaysBeforeNegative},
		{15, 0, nil},
		{31, 5, nil},
	}

	for _, tt := range tests {
		_, err := models.UpsertReminderSettings(models.DB, tt.payday, tt.daysBefore)
		assert.ErrorIs(suite.T(), err, tt.err, "wrong error for payday %d, daysBefore %d", tt.payday, tt.daysBefore)
	}
}

func (suite *TestSuiteStandard) TestReminderSettingsEmpty() {
	settings, err := models.GetReminderSettings(models.DB)
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), settings)
}

func (suite *TestSuiteStandard) TestReminderSettingsUpsert() {
	_, err := models.UpsertReminderSettings(models.DB, 15, 2)
	require.Nil(suite.T(), err)

	settings, err := models.GetReminderSettings(models.DB)
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), settings)
	assert.Equal(suite.T(), 15, settings.Payday)
	assert.Equal(suite.T(), 2, settings.DaysBefore)

	// The upsert replaces the row instead of adding one
	_, err = models.UpsertReminderSettings(models.DB, 28, 0)
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Unscoped().Model(&models.ReminderSettings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	settings, err = models.GetReminderSettings(models.DB)
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), settings)
	assert.Equal(suite.T(), 28, settings.Payday)
}

func (suite *TestSuiteStandard) TestReminderSettingsInvalidKeepsExisting() {
	_, err := models.UpsertReminderSettings(models.DB, 15, 2)
	require.Nil(suite.T(), err)

	// A failing validation must not remove the stored configuration
	_, err = models.UpsertReminderSettings(models.DB, 0, 2)
	require.NotNil(suite.T(), err)

	settings, err := models.GetReminderSettings(models.DB)
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), settings)
	assert.Equal(suite.T(), 15, settings.Payday)
}
