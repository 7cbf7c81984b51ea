package v1

import (
	"errors"
	"net/http"

	"github.com/kukkaro/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrNoCurrentPeriod) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errNoHistoryForMonth  = errors.New("there is no archived period for the specified month")
	errNoOverviewForMonth = errors.New("the overview is only available for the current budget period, use /v1/history for archived months")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
