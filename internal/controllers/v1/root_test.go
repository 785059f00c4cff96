package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/allocator/internal/controllers/v1"
	"github.com/envelope-zero/allocator/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Balance:      "http://example.com/v1/balance",
		Envelopes:    "http://example.com/v1/envelopes",
		Deposits:     "http://example.com/v1/deposits",
		Withdrawals:  "http://example.com/v1/withdrawals",
		Transfers:    "http://example.com/v1/transfers",
		Distribution: "http://example.com/v1/distribution",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET, DELETE"},
		{"/v1/balance", "OPTIONS, GET"},
		{"/v1/envelopes", "OPTIONS, GET, POST"},
		{"/v1/deposits", "OPTIONS, POST"},
		{"/v1/withdrawals", "OPTIONS, POST"},
		{"/v1/transfers", "OPTIONS, POST"},
		{"/v1/distribution", "OPTIONS, GET"},
		{"/healthz", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Len(suite.envelopes(), 0)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/balance", "")
	var balance v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &balance)
	suite.Assert().True(balance.Data.Amount.IsZero(), "Balance is %s", balance.Data.Amount)

	// Names can be reused
	suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Rent"})
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	suite.createScenario()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-i-am-sure", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r.Body.Bytes()))

	suite.Assert().Len(suite.envelopes(), 4)
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "There is a problem with the database connection")
}

func (suite *TestSuiteStandard) TestBalance() {
	suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": "1000.50"}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Amount.Equal(decimal.RequireFromString("1000.50")))
	suite.Assert().True(response.Data.Allocated.Equal(decimal.RequireFromString("1000.50")))
	suite.Assert().True(response.Data.Unallocated.IsZero())
	suite.Assert().Equal("http://example.com/v1/envelopes", response.Data.Links.Envelopes)
}

func (suite *TestSuiteStandard) TestBalanceDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/balance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
