package v1

import (
	"fmt"
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
)

// VacationEditable represents all values for a Vacation that can be
// updated by the API
type VacationEditable struct {
	Name  string    `json:"name" example:"Lapland 2024"`               // Name of the vacation
	Start time.Time `json:"start" example:"2024-02-12T00:00:00Z"`     // First day of the vacation
	End   time.Time `json:"end" example:"2024-02-18T00:00:00Z"`       // Last day of the vacation, inclusive
}

// model returns the database resource for this editable struct
func (editable VacationEditable) model() models.Vacation {
	return models.Vacation{
		Name:  editable.Name,
		Start: editable.Start,
		End:   editable.End,
	}
}

type VacationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/vacations/8963c115-c148-476f-a902-0bc5a8ab0575"` // The vacation itself
}

// Vacation is the API representation of a Vacation
type Vacation struct {
	models.DefaultModel
	VacationEditable
	Spent decimal.Decimal `json:"spent" example:"384.52"` // Sum of all expenses dated within the vacation
	Links VacationLinks   `json:"links"`
}

// newVacation returns the API representation of a vacation resource
func newVacation(c string, model models.Vacation, spent decimal.Decimal) Vacation {
	url := fmt.Sprintf("%s/v1/vacations/%s", c, model.ID)

	return Vacation{
		DefaultModel: model.DefaultModel,
		VacationEditable: VacationEditable{
			Name:  model.Name,
			Start: model.Start,
			End:   model.End,
		},
		Spent: spent,
		Links: VacationLinks{
			Self: url,
		},
	}
}

type VacationListResponse struct {
	Data       []Vacation  `json:"data"`                                                         // List of vacations
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VacationCreateResponse struct {
	Data  []VacationResponse `json:"data"`                                                          // List of created vacations
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred
}

func (v *VacationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	v.Data = append(v.Data, VacationResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VacationResponse struct {
	Data  *Vacation `json:"data"`                                                          // The vacation
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred
}

// VacationQueryFilter contains the fields that vacations can be filtered with
type VacationQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Vacation returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Vacations to return. Defaults to 50.
}
