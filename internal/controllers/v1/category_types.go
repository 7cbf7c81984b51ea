package v1

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/models"
	kukkaro_uuid "github.com/kukkaro/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name          string          `json:"name" example:"Ruoka" default:""`                                   // Name of the category
	Note          string          `json:"note" example:"Groceries and eating out" default:""`                // Notes about the category
	ParentID      *uuid.UUID      `json:"parentId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`           // ID of the parent category. Unset for main categories
	Allocated     decimal.Decimal `json:"allocated" example:"300.00" default:"0"`                            // The amount of money allocated to the category for the period
	ComputedTotal bool            `json:"computedTotal" example:"false" default:"false"`                     // Is this a display-only rollup row?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:          editable.Name,
		Note:          editable.Note,
		ParentID:      editable.ParentID,
		Allocated:     editable.Allocated,
		ComputedTotal: editable.ComputedTotal,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategoryResource(url string, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:          model.Name,
			Note:          model.Note,
			ParentID:      model.ParentID,
			Allocated:     model.Allocated,
			ComputedTotal: model.ComputedTotal,
		},
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name          string            `form:"name" filterField:"false"`   // By name
	Note          string            `form:"note" filterField:"false"`   // By note
	Parent        kukkaro_uuid.UUID `form:"parent" filterField:"false"` // By ID of the parent category
	Main          bool              `form:"main" filterField:"false"`   // Only main categories
	ComputedTotal bool              `form:"computedTotal"`              // Is this a display-only rollup row?
	Search        string            `form:"search" filterField:"false"` // By string in name or note
	Offset        uint              `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit         int               `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		ComputedTotal: f.ComputedTotal,
	}
}

// CopyCategoriesEditable selects the archived period to copy the category
// tree from.
type CopyCategoriesEditable struct {
	Period string `json:"period" example:"2024-01"` // The archived month to copy from. Defaults to the newest archived month
}
