package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/kukkaro/backend/internal/controllers/v1"
	"github.com/kukkaro/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	income := createTestIncome(suite.T(), v1.IncomeEditable{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/incomes/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestIncomesCreate() {
	income := createTestIncome(suite.T(), v1.IncomeEditable{
		Name:   "Palkka",
		Note:   "Helmikuun palkka",
		Amount: decimal.NewFromFloat(2317.34),
	})

	require.NotNil(suite.T(), income.Data)
	assert.Equal(suite.T(), "Palkka", income.Data.Name)
	assert.True(suite.T(), income.Data.Amount.Equal(decimal.NewFromFloat(2317.34)))
}

func (suite *TestSuiteStandard) TestIncomesList() {
	createTestIncome(suite.T(), v1.IncomeEditable{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})
	createTestIncome(suite.T(), v1.IncomeEditable{Name: "Myynti", Note: "Kirpputori", Amount: decimal.NewFromFloat(50)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All incomes", "", 2},
		{"By name", "name=Palkka", 1},
		{"By note", "note=Kirpputori", 1},
		{"Search", "search=myynti", 1},
		{"No match", "name=Osinko", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/incomes?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesGetSingle() {
	income := createTestIncome(suite.T(), v1.IncomeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Income", income.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Nonexistent Income", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "NotAUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Existing Income", income.Data.ID.String(), http.StatusNoContent, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/incomes/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesUpdate() {
	income := createTestIncome(suite.T(), v1.IncomeEditable{Name: "Palkka", Amount: decimal.NewFromFloat(2000)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/incomes/%s", income.Data.ID), map[string]float64{
		"amount": 2100,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(2100)))
	assert.Equal(suite.T(), "Palkka", response.Data.Name)
}
