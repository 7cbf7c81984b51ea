package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/models"
	kukkaro_uuid "github.com/kukkaro/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpenseEditable represents all user configurable parameters
type RecurringExpenseEditable struct {
	Name       string            `json:"name" example:"Vuokra" default:""`                                             // Name of the recurring expense
	Amount     decimal.Decimal   `json:"amount" example:"850.00" minimum:"0.00000001"`                                 // The amount of the materialized expenses
	CategoryID uuid.UUID         `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f" binding:"required"` // ID of the category materialized expenses belong to
	DueDate    time.Time         `json:"dueDate" example:"2024-02-01T00:00:00Z"`                                       // Day the materialized expenses are dated at
	Recurrence models.Recurrence `json:"recurrence" example:"monthly" enums:"weekly,monthly"`                          // How often the expense recurs
	Active     bool              `json:"active" example:"true" default:"false"`                                        // Only active templates are materialized at rollover
}

func (editable RecurringExpenseEditable) model() models.RecurringExpense {
	return models.RecurringExpense{
		Name:       editable.Name,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		DueDate:    editable.DueDate,
		Recurrence: editable.Recurrence,
		Active:     editable.Active,
	}
}

type RecurringExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/recurring-expenses/d6a9ce19-956c-4d3d-a599-5fa0a1fc8f1e"` // The recurring expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`     // The category of the recurring expense
}

type RecurringExpense struct {
	models.DefaultModel
	RecurringExpenseEditable
	Links RecurringExpenseLinks `json:"links"`
}

func newRecurringExpense(url string, model models.RecurringExpense) RecurringExpense {
	return RecurringExpense{
		DefaultModel: model.DefaultModel,
		RecurringExpenseEditable: RecurringExpenseEditable{
			Name:       model.Name,
			Amount:     model.Amount,
			CategoryID: model.CategoryID,
			DueDate:    model.DueDate,
			Recurrence: model.Recurrence,
			Active:     model.Active,
		},
		Links: RecurringExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/recurring-expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type RecurringExpenseListResponse struct {
	Data       []RecurringExpense `json:"data"`                                                          // List of RecurringExpenses
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type RecurringExpenseCreateResponse struct {
	Data  []RecurringExpenseResponse `json:"data"`                                                          // List of the created RecurringExpenses or their respective error
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *RecurringExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`                                                          // Data for the RecurringExpense
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecurringExpenseQueryFilter struct {
	Name       string            `form:"name" filterField:"false"`            // By name
	CategoryID kukkaro_uuid.UUID `form:"category"`                            // By ID of the category
	Recurrence string            `form:"recurrence"`                          // By recurrence
	Active     bool              `form:"active"`                              // Only active or only inactive templates
	Search     string            `form:"search" filterField:"false"`          // By string in the name
	Offset     uint              `form:"offset" filterField:"false"`          // The offset of the first RecurringExpense returned. Defaults to 0.
	Limit      int               `form:"limit" filterField:"false"`           // Maximum number of RecurringExpenses to return. Defaults to 50.
}

func (f RecurringExpenseQueryFilter) model() models.RecurringExpense {
	return models.RecurringExpense{
		CategoryID: f.CategoryID.UUID,
		Recurrence: models.Recurrence(f.Recurrence),
		Active:     f.Active,
	}
}
