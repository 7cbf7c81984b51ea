package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kukkaro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthOverview aggregates a budget period into the figures the month view
// renders: income, allocations and spending rolled up per main category.
type MonthOverview struct {
	Period      types.Month     `json:"period" example:"2024-02"`
	PeriodLabel string          `json:"periodLabel" example:"01.02-29.02.2024"` // Inclusive date range of the period
	Start       time.Time       `json:"start" example:"2024-02-01T00:00:00Z"`
	End         time.Time       `json:"end" example:"2024-02-29T00:00:00Z"`
	Income      decimal.Decimal `json:"income" example:"2317.34"`    // Sum of all incomes for the period
	Allocated   decimal.Decimal `json:"allocated" example:"2100.00"` // Sum of all leaf category allocations
	Spent       decimal.Decimal `json:"spent" example:"133.70"`      // Sum of all expenses within the period
	Remaining   decimal.Decimal `json:"remaining" example:"1966.30"` // Allocated minus Spent
	Categories  []CategoryMonth `json:"categories"`                  // Main categories with their children
}

// CategoryMonth is the rolled-up month view of a main category.
type CategoryMonth struct {
	ID            uuid.UUID          `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Name          string             `json:"name" example:"Ruoka"`
	Note          string             `json:"note,omitempty" example:"Groceries and eating out"`
	Allocated     decimal.Decimal    `json:"allocated" example:"300.00"` // Sum of child allocations, or own allocation for childless mains
	Spent         decimal.Decimal    `json:"spent" example:"213.62"`
	Remaining     decimal.Decimal    `json:"remaining" example:"86.38"`
	ComputedTotal bool               `json:"computedTotal" example:"false"`
	SubCategories []SubCategoryMonth `json:"subCategories"`
}

// SubCategoryMonth is the month view of a sub category.
type SubCategoryMonth struct {
	ID            uuid.UUID       `json:"id" example:"f11b6437-2f92-4dc4-8b3e-f64s23fd3cb9"`
	Name          string          `json:"name" example:"Ruokakauppa"`
	Note          string          `json:"note,omitempty"`
	Allocated     decimal.Decimal `json:"allocated" example:"300.00"`
	Spent         decimal.Decimal `json:"spent" example:"213.62"`
	Remaining     decimal.Decimal `json:"remaining" example:"86.38"`
	ComputedTotal bool            `json:"computedTotal" example:"false"`
}

// Overview computes the month view for a budget period.
//
// Main categories with children report the sums over their children, the
// others report their own allocation. Computed total rows mirror the rolled
// up figures of their parent so that the client can render them verbatim.
func Overview(db *gorm.DB, period BudgetPeriod) (MonthOverview, error) {
	overview := MonthOverview{
		Period:      period.PeriodID(),
		PeriodLabel: period.PeriodID().FormatRange(),
		Start:       period.Start,
		End:         period.End,
		Income:      decimal.Zero,
		Allocated:   decimal.Zero,
		Spent:       decimal.Zero,
	}

	income, err := TotalIncome(db)
	if err != nil {
		return MonthOverview{}, err
	}
	overview.Income = income

	spent, err := SpentByCategory(db, period.Start, period.End)
	if err != nil {
		return MonthOverview{}, err
	}

	var categories []Category
	err = db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return MonthOverview{}, err
	}

	children := make(map[uuid.UUID][]Category)
	for _, category := range categories {
		if !category.IsMain() {
			children[*category.ParentID] = append(children[*category.ParentID], category)
		}
	}

	for _, category := range categories {
		if !category.IsMain() {
			continue
		}

		row := CategoryMonth{
			ID:            category.ID,
			Name:          category.Name,
			Note:          category.Note,
			ComputedTotal: category.ComputedTotal,
			SubCategories: []SubCategoryMonth{},
		}

		subs := children[category.ID]
		if len(subs) == 0 {
			row.Allocated = category.Allocated
			row.Spent = spent[category.ID]
		} else {
			row.Allocated = decimal.Zero
			row.Spent = spent[category.ID]

			for _, sub := range subs {
				if !sub.ComputedTotal {
					row.Allocated = row.Allocated.Add(sub.Allocated)
				}
				row.Spent = row.Spent.Add(spent[sub.ID])
			}
		}
		row.Remaining = row.Allocated.Sub(row.Spent)

		for _, sub := range subs {
			subRow := SubCategoryMonth{
				ID:            sub.ID,
				Name:          sub.Name,
				Note:          sub.Note,
				ComputedTotal: sub.ComputedTotal,
				Allocated:     sub.Allocated,
				Spent:         spent[sub.ID],
			}

			// Total rows carry the parent's rolled up figures.
			if sub.ComputedTotal {
				subRow.Allocated = row.Allocated
				subRow.Spent = row.Spent
			}
			subRow.Remaining = subRow.Allocated.Sub(subRow.Spent)

			row.SubCategories = append(row.SubCategories, subRow)
		}

		if !row.ComputedTotal {
			overview.Allocated = overview.Allocated.Add(row.Allocated)
			overview.Spent = overview.Spent.Add(row.Spent)
		}

		overview.Categories = append(overview.Categories, row)
	}

	overview.Remaining = overview.Allocated.Sub(overview.Spent)

	if overview.Categories == nil {
		overview.Categories = []CategoryMonth{}
	}

	return overview, nil
}
