package models_test

import (
	"github.com/kukkaro/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNotFoundErrorRewrite() {
	var category models.Category
	err := models.DB.First(&category, "name = ?", "does not exist").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var category models.Category
	err := models.DB.First(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
