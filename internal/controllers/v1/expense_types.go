package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/models"
	"github.com/kukkaro/backend/internal/types"
	kukkaro_uuid "github.com/kukkaro/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Date        time.Time       `json:"date" example:"2024-02-14T00:00:00Z"`                                        // Day the expense was made. Defaults to the current day
	Amount      decimal.Decimal `json:"amount" example:"14.50" minimum:"0.00000001"`                                // The amount spent
	Description string          `json:"description" example:"Lounas" default:""`                                    // Description of the expense
	CategoryID  uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f" binding:"required"` // ID of the category the expense belongs to
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/d6a9ce19-956c-4d3d-a599-5fa0a1fc8f1e"`     // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the expense
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	RecurringExpenseID *uuid.UUID  `json:"recurringExpenseId" example:"f11b6437-2f92-4dc4-8b3e-f64s23fd3cb9"` // Set when the expense was materialized from a recurring expense
	Period             types.Month `json:"period,omitempty" example:"2024-02"`                                // The period the expense was materialized for
	Links              ExpenseLinks `json:"links"`
}

func newExpense(url string, model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Description: model.Description,
			CategoryID:  model.CategoryID,
		},
		RecurringExpenseID: model.RecurringExpenseID,
		Period:             model.Period,
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Description string            `form:"description" filterField:"false"` // By description
	CategoryID  kukkaro_uuid.UUID `form:"category"`                        // By ID of the category
	From        time.Time         `form:"from" filterField:"false" time_format:"2006-01-02"` // Expenses made on or after this date
	To          time.Time         `form:"to" filterField:"false" time_format:"2006-01-02"`   // Expenses made on or before this date
	Search      string            `form:"search" filterField:"false"` // By string in the description
	Offset      uint              `form:"offset" filterField:"false"` // The offset of the first Expense returned. Defaults to 0.
	Limit       int               `form:"limit" filterField:"false"`  // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		CategoryID: f.CategoryID.UUID,
	}
}
