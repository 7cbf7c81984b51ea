package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/kukkaro/backend/internal/controllers/v1"
	"github.com/kukkaro/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archiveTestPeriod sets a February period with an income and a category and
// rolls over into March, so that February is archived.
func archiveTestPeriod(t *testing.T) {
	setTestPeriod(t, v1.PeriodEditable{
		Start:       date(2024, 2, 1),
		End:         date(2024, 2, 29),
		TotalAmount: decimal.NewFromFloat(2000),
	})

	createTestIncome(t, v1.IncomeEditable{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	main := createTestCategory(t, v1.CategoryEditable{Name: "Ruoka"})
	parentID := main.Data.ID
	createTestCategory(t, v1.CategoryEditable{
		Name:      "Ruokakauppa",
		ParentID:  &parentID,
		Allocated: decimal.NewFromFloat(300),
	})

	r := test.Request(t, http.MethodPost, "http://example.com/v1/period/rollover", v1.PeriodEditable{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestHistoryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHistoryMonthOptions() {
	archiveTestPeriod(suite.T())

	tests := []struct {
		name   string
		month  string
		status int
	}{
		{"Archived month", "2024-02", http.StatusNoContent},
		{"No archive for month", "2020-01", http.StatusNotFound},
		{"Unparseable month", "not-a-month", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/history/"+tt.month, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestHistoryList() {
	archiveTestPeriod(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HistoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	month := response.Data[0]
	assert.Equal(suite.T(), "2024-02", month.Period.String())
	assert.Equal(suite.T(), "01.02-29.02.2024", month.Label)
	assert.Equal(suite.T(), "http://example.com/v1/history/2024-02", month.Links.Self)
}

func (suite *TestSuiteStandard) TestHistoryMonth() {
	archiveTestPeriod(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history/2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromFloat(2000)))
	assert.Len(suite.T(), response.Data.Categories, 2)
	require.Len(suite.T(), response.Data.Incomes, 1)
	assert.Equal(suite.T(), "Palkka", response.Data.Incomes[0].Name)
}

func (suite *TestSuiteStandard) TestHistoryMonthNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history/2020-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestHistoryMonthDelete() {
	archiveTestPeriod(suite.T())

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/history/2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history/2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/history/2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
