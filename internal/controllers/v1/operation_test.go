package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/allocator/internal/controllers/v1"
	"github.com/envelope-zero/allocator/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDepositIntoAll() {
	suite.createScenario()

	r := suite.operation("deposits", map[string]any{"amount": "1000"}, http.StatusOK)
	suite.Require().NotNil(r.Data)
	suite.Assert().Nil(r.Error)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(r.Data.Allocated.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(r.Data.Unallocated.IsZero())
	suite.Assert().Contains(r.Messages, info("$1000.00 has been deposited"))

	suite.assertAmounts(map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 100, "Fun": 500})

	// Groceries is full, Fun receives everything else
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)
	suite.assertAmounts(map[string]int64{"Rent": 600, "Savings": 200, "Groceries": 100, "Fun": 1100})
}

func (suite *TestSuiteStandard) TestDepositIntoEnvelope() {
	groceries := suite.createScenario()["Groceries"].ID

	// The cap is ignored for deposits into a specific envelope
	r := suite.operation("deposits", v1.DepositEditable{
		Amount:     decimal.NewFromInt(250),
		EnvelopeID: &groceries,
	}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(250)))

	suite.assertAmounts(map[string]int64{"Rent": 0, "Savings": 0, "Groceries": 250, "Fun": 0})
}

func (suite *TestSuiteStandard) TestDepositFails() {
	suite.createScenario()

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Negative amount", map[string]any{"amount": -10}, http.StatusBadRequest, "Cannot deposit negative amount"},
		{"Unknown envelope", map[string]any{"amount": 10, "envelopeId": uuid.NewString()}, http.StatusNotFound, "there is no envelope matching your query"},
		{"Invalid envelope ID", `{ "amount": 10, "envelopeId": "not-a-uuid" }`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
		{"Not a number", `{ "amount": "ten" }`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/deposits", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}

	suite.assertAmounts(map[string]int64{"Rent": 0, "Savings": 0, "Groceries": 0, "Fun": 0})
}

func (suite *TestSuiteStandard) TestDepositZero() {
	suite.createScenario()

	r := suite.operation("deposits", map[string]any{"amount": 0}, http.StatusOK)
	suite.Assert().Contains(r.Messages, info("Cannot deposit $0"))
	suite.Assert().True(r.Data.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestWithdrawFromAll() {
	suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	// The lowest priority envelopes are emptied first
	r := suite.operation("withdrawals", map[string]any{"amount": 550}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(450)))
	suite.assertAmounts(map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 50, "Fun": 0})
}

func (suite *TestSuiteStandard) TestWithdrawOverdraft() {
	suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	r := suite.operation("withdrawals", map[string]any{"amount": 1200}, http.StatusBadRequest)
	suite.Require().NotNil(r.Error)
	suite.Assert().Equal("Withdraw overdrafted account, $200.00 could not be withdrawn", *r.Error)

	// Everything that could be withdrawn is gone
	suite.assertAmounts(map[string]int64{"Rent": 0, "Savings": 0, "Groceries": 0, "Fun": 0})

	b := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/balance", "")
	var balance v1.BalanceResponse
	test.DecodeResponse(suite.T(), &b, &balance)
	suite.Assert().True(balance.Data.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestWithdrawFromSingleEnvelope() {
	groceries := suite.createScenario()["Groceries"].ID
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	r := suite.operation("withdrawals", v1.WithdrawalEditable{
		Amount:     decimal.NewFromInt(80),
		EnvelopeID: &groceries,
	}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(920)))
	suite.assertAmounts(map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 20, "Fun": 500})

	// Insufficient funds do not change anything
	r = suite.operation("withdrawals", v1.WithdrawalEditable{
		Amount:     decimal.NewFromInt(50),
		EnvelopeID: &groceries,
	}, http.StatusBadRequest)
	suite.Assert().Equal("Invalid envelope transfer, insufficient funds in Groceries", *r.Error)
	suite.assertAmounts(map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 20, "Fun": 500})
}

func (suite *TestSuiteStandard) TestWithdrawFails() {
	suite.createScenario()

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Negative amount", map[string]any{"amount": "-5"}, http.StatusBadRequest, "Cannot withdraw negative amount"},
		{"Unknown envelope", map[string]any{"amount": 10, "envelopeId": uuid.NewString()}, http.StatusNotFound, "there is no envelope matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/withdrawals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransfer() {
	envelopes := suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	rent := envelopes["Rent"].ID
	savings := envelopes["Savings"].ID
	groceries := envelopes["Groceries"].ID
	fun := envelopes["Fun"].ID

	// The cap of the destination is not checked
	r := suite.operation("transfers", v1.TransferEditable{
		Amount:        decimal.NewFromInt(50),
		SourceID:      &rent,
		DestinationID: &groceries,
	}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(1000)))
	suite.Assert().Contains(r.Messages, info("$50.00 has been transferred from Rent to Groceries"))
	suite.assertAmounts(map[string]int64{"Rent": 250, "Savings": 100, "Groceries": 150, "Fun": 500})

	// Without a source, this is a deposit
	r = suite.operation("transfers", v1.TransferEditable{
		Amount:        decimal.NewFromInt(20),
		DestinationID: &savings,
	}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(1020)))

	// Without a destination, this is a withdrawal
	r = suite.operation("transfers", v1.TransferEditable{
		Amount:   decimal.NewFromInt(100),
		SourceID: &fun,
	}, http.StatusOK)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(920)))

	suite.assertAmounts(map[string]int64{"Rent": 250, "Savings": 120, "Groceries": 150, "Fun": 400})
}

func (suite *TestSuiteStandard) TestTransferFails() {
	envelopes := suite.createScenario()
	suite.operation("deposits", map[string]any{"amount": 1000}, http.StatusOK)

	rent := envelopes["Rent"].ID
	fun := envelopes["Fun"].ID
	unknown := uuid.New()

	tests := []struct {
		name     string
		transfer v1.TransferEditable
		status   int
		err      string
	}{
		{"Same envelope", v1.TransferEditable{Amount: decimal.NewFromInt(10), SourceID: &rent, DestinationID: &rent}, http.StatusBadRequest, "Cannot transfer to the same envelope"},
		{"No envelopes", v1.TransferEditable{Amount: decimal.NewFromInt(10)}, http.StatusBadRequest, "Source and destination cannot both be empty"},
		{"Zero amount", v1.TransferEditable{SourceID: &rent, DestinationID: &fun}, http.StatusBadRequest, "Cannot transfer an amount less than or equal to 0"},
		{"Insufficient funds", v1.TransferEditable{Amount: decimal.NewFromInt(301), SourceID: &rent, DestinationID: &fun}, http.StatusBadRequest, "Invalid envelope transfer, insufficient funds: amount cannot be more than envelope amount"},
		{"Unknown destination", v1.TransferEditable{Amount: decimal.NewFromInt(10), SourceID: &rent, DestinationID: &unknown}, http.StatusNotFound, "there is no envelope matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transfers", tt.transfer)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.assertAmounts(map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 100, "Fun": 500})
}

func (suite *TestSuiteStandard) TestDistribution() {
	suite.createScenario()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?amount=1000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	expected := map[string]int64{"Rent": 300, "Savings": 100, "Groceries": 100, "Fun": 500}
	for name, amount := range expected {
		suite.Assert().True(response.Data.For(name).Equal(decimal.NewFromInt(amount)), "Distribution for %s is wrong: %s", name, response.Data.For(name))
	}
	suite.Assert().True(response.Data.Total().Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.Leftover.IsZero())

	// The preview does not change anything
	suite.assertAmounts(map[string]int64{"Rent": 0, "Savings": 0, "Groceries": 0, "Fun": 0})
}

func (suite *TestSuiteStandard) TestDistributionNoEnvelopes() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?amount=$20", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Leftover.Equal(decimal.NewFromInt(20)))
	suite.Assert().Empty(response.Data.Deltas)
}

func (suite *TestSuiteStandard) TestDistributionInvalidAmount() {
	for _, query := range []string{"", "?amount=abc", "?amount="} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/distribution"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestOperationOptions() {
	for _, endpoint := range []string{"deposits", "withdrawals", "transfers"} {
		suite.T().Run(endpoint, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/"+endpoint, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/distribution", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOperationsDBClosed() {
	suite.CloseDB()

	for _, endpoint := range []string{"deposits", "withdrawals", "transfers"} {
		suite.T().Run(endpoint, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/"+endpoint, `{ "amount": 10 }`)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?amount=10", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
