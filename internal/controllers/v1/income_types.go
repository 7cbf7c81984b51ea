package v1

import (
	"fmt"

	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Name   string          `json:"name" example:"Palkka" default:""`              // Name of the income
	Note   string          `json:"note" example:"Monthly salary" default:""`      // Notes about the income
	Amount decimal.Decimal `json:"amount" example:"2317.34" minimum:"0.00000001"` // The amount for the period
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Name:   editable.Name,
		Note:   editable.Note,
		Amount: editable.Amount,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/d6a9ce19-956c-4d3d-a599-5fa0a1fc8f1e"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(url string, model models.Income) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Name:   model.Name,
			Note:   model.Note,
			Amount: model.Amount,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created Incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Income returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Incomes to return. Defaults to 50.
}
