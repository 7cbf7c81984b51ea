package v1

import (
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PeriodEditable represents all user configurable parameters
type PeriodEditable struct {
	Start       time.Time       `json:"start" example:"2024-02-01T00:00:00Z" binding:"required"` // First day of the period
	End         time.Time       `json:"end" example:"2024-02-29T00:00:00Z" binding:"required"`   // Last day of the period, inclusive
	TotalAmount decimal.Decimal `json:"totalAmount" example:"2000.00"`                           // The money available for the period
}

func (editable PeriodEditable) model() models.BudgetPeriod {
	return models.BudgetPeriod{
		Start:       editable.Start,
		End:         editable.End,
		TotalAmount: editable.TotalAmount,
	}
}

type PeriodLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/period"`          // The period itself
	Rollover string `json:"rollover" example:"https://example.com/api/v1/period/rollover"` // Archive this period and start the next one
	Month    string `json:"month" example:"https://example.com/api/v1/months?month=2024-02"` // The aggregated month view for this period
}

type Period struct {
	models.DefaultModel
	PeriodEditable
	PeriodID types.Month `json:"periodId" example:"2024-02"`      // Identifier of the period, derived from the start date
	Label    string      `json:"label" example:"01.02-29.02.2024"` // Human readable date range of the period
	Links    PeriodLinks `json:"links"`
}

func newPeriod(url string, model models.BudgetPeriod) Period {
	id := model.PeriodID()

	return Period{
		DefaultModel: model.DefaultModel,
		PeriodEditable: PeriodEditable{
			Start:       model.Start,
			End:         model.End,
			TotalAmount: model.TotalAmount,
		},
		PeriodID: id,
		Label:    id.FormatRange(),
		Links: PeriodLinks{
			Self:     url + "/v1/period",
			Rollover: url + "/v1/period/rollover",
			Month:    url + "/v1/months?month=" + id.String(),
		},
	}
}

type PeriodResponse struct {
	Data  *Period `json:"data"`                                                          // The active period, null when none is active
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
