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

func (suite *TestSuiteStandard) TestPeriodOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/period/rollover", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestPeriodGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Nil(suite.T(), response.Data, "data must be null when no period is active")
	assert.Nil(suite.T(), response.Error)
}

func (suite *TestSuiteStandard) TestPeriodPut() {
	period := setTestPeriod(suite.T(), v1.PeriodEditable{
		Start:       date(2024, 2, 1),
		End:         date(2024, 2, 29),
		TotalAmount: decimal.NewFromFloat(2000),
	})

	require.NotNil(suite.T(), period.Data)
	assert.Equal(suite.T(), "2024-02", period.Data.PeriodID.String())
	assert.Equal(suite.T(), "01.02-29.02.2024", period.Data.Label)
	assert.Equal(suite.T(), "http://example.com/v1/period", period.Data.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/months?month=2024-02", period.Data.Links.Month)

	// A second PUT replaces the period
	replaced := setTestPeriod(suite.T(), v1.PeriodEditable{
		Start: date(2024, 3, 1),
		End:   date(2024, 3, 31),
	})
	require.NotNil(suite.T(), replaced.Data)
	assert.Equal(suite.T(), "2024-03", replaced.Data.PeriodID.String())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2024-03", response.Data.PeriodID.String())
}

func (suite *TestSuiteStandard) TestPeriodPutInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Missing required fields", map[string]string{"totalAmount": "100"}},
		{"End before start", v1.PeriodEditable{Start: date(2024, 2, 29), End: date(2024, 2, 1)}},
		{"Broken JSON", `{ "start": "2024`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/period", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestPeriodDelete() {
	setTestPeriod(suite.T(), v1.PeriodEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestPeriodRollover() {
	setTestPeriod(suite.T(), v1.PeriodEditable{
		Start:       date(2024, 2, 1),
		End:         date(2024, 2, 29),
		TotalAmount: decimal.NewFromFloat(2000),
	})

	createTestIncome(suite.T(), v1.IncomeEditable{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	next := v1.PeriodEditable{
		Start:       date(2024, 3, 1),
		End:         date(2024, 3, 31),
		TotalAmount: decimal.NewFromFloat(2100),
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/period/rollover", next)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2024-03", response.Data.PeriodID.String())

	// The previous period is now in the history
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var history v1.HistoryListResponse
	test.DecodeResponse(suite.T(), &r, &history)
	require.Len(suite.T(), history.Data, 1)
	assert.Equal(suite.T(), "2024-02", history.Data[0].Period.String())

	// Incomes were cleared
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var incomes v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &incomes)
	assert.Len(suite.T(), incomes.Data, 0)
}

func (suite *TestSuiteStandard) TestPeriodDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/period", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
