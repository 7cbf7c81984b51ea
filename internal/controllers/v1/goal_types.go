package v1

import (
	"fmt"
	"time"

	"github.com/kukkaro/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name                  string          `json:"name" example:"Kesäloma" default:""`                   // Name of the goal
	Note                  string          `json:"note" example:"Trip to Lapland" default:""`            // Notes about the goal
	TargetAmount          decimal.Decimal `json:"targetAmount" example:"1200.00" minimum:"0.00000001"`  // The amount to be saved in total
	Saved                 decimal.Decimal `json:"saved" example:"400.00" default:"0"`                   // The amount already saved
	Start                 time.Time       `json:"start" example:"2024-01-01T00:00:00Z"`                 // First month that counts towards the goal
	Deadline              time.Time       `json:"deadline" example:"2024-06-30T00:00:00Z"`              // The goal should be reached by the end of this month
	CreateSavingsCategory bool            `json:"createSavingsCategory" example:"true" default:"false"` // Allocate the monthly amount to the savings category on creation
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		Saved:        editable.Saved,
		Start:        editable.Start,
		Deadline:     editable.Deadline,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/d6a9ce19-956c-4d3d-a599-5fa0a1fc8f1e"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" example:"200.00"` // The amount to save each month, computed at creation
	Links         GoalLinks       `json:"links"`
}

func newGoal(url string, model models.Goal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			Saved:        model.Saved,
			Start:        model.Start,
			Deadline:     model.Deadline,
		},
		MonthlyAmount: model.MonthlyAmount,
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of Goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of the created Goals or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the Goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}
