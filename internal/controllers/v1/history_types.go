package v1

import (
	"fmt"
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
)

type HistoryMonthLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/history/2024-01"` // The archived month itself
}

// HistoryMonth is the metadata of one archived budget period.
type HistoryMonth struct {
	Period      types.Month       `json:"period" example:"2024-01"`
	Label       string            `json:"label" example:"01.01-31.01.2024"` // Human readable date range of the period
	Start       time.Time         `json:"start" example:"2024-01-01T00:00:00Z"`
	End         time.Time         `json:"end" example:"2024-01-31T00:00:00Z"`
	TotalAmount decimal.Decimal   `json:"totalAmount" example:"2000.00"`
	Links       HistoryMonthLinks `json:"links"`
}

func newHistoryMonth(url string, model models.HistoryPeriod) HistoryMonth {
	return HistoryMonth{
		Period:      model.Period,
		Label:       model.Period.FormatRange(),
		Start:       model.Start,
		End:         model.End,
		TotalAmount: model.TotalAmount,
		Links: HistoryMonthLinks{
			Self: fmt.Sprintf("%s/v1/history/%s", url, model.Period),
		},
	}
}

// HistoryCategory is a frozen category snapshot in an archived period.
type HistoryCategory struct {
	Name          string          `json:"name" example:"Ruoka"`
	ParentName    string          `json:"parentName,omitempty" example:""` // Name of the parent category, empty for main categories
	Allocated     decimal.Decimal `json:"allocated" example:"300.00"`
	ComputedTotal bool            `json:"computedTotal" example:"false"`
}

func newHistoryCategory(model models.HistoryCategory) HistoryCategory {
	return HistoryCategory{
		Name:          model.Name,
		ParentName:    model.ParentName,
		Allocated:     model.Allocated,
		ComputedTotal: model.ComputedTotal,
	}
}

// HistoryIncome is a frozen income snapshot in an archived period.
type HistoryIncome struct {
	Name   string          `json:"name" example:"Palkka"`
	Amount decimal.Decimal `json:"amount" example:"2317.34"`
}

func newHistoryIncome(model models.HistoryIncome) HistoryIncome {
	return HistoryIncome{
		Name:   model.Name,
		Amount: model.Amount,
	}
}

// HistoryMonthDetail is an archived period with its category and income
// snapshots.
type HistoryMonthDetail struct {
	HistoryMonth
	Categories []HistoryCategory `json:"categories"` // Frozen category tree of the period
	Incomes    []HistoryIncome   `json:"incomes"`    // Frozen incomes of the period
}

type HistoryListResponse struct {
	Data  []HistoryMonth `json:"data"`                                                          // List of archived months, newest first
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HistoryResponse struct {
	Data  *HistoryMonthDetail `json:"data"`                                                          // Data for the archived month
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
