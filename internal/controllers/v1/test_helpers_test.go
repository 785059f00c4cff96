package v1_test

import (
	"net/http"

	"github.com/envelope-zero/allocator/internal/budget"
	v1 "github.com/envelope-zero/allocator/internal/controllers/v1"
	"github.com/envelope-zero/allocator/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestEnvelope(editable v1.EnvelopeEditable, expectedStatus ...int) v1.EnvelopeResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", []v1.EnvelopeEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.EnvelopeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)

	return response.Data[0]
}

// createScenario creates envelopes with all fill settings. A deposit
// of 1000 is distributed as Rent 300, Savings 100, Groceries 100, Fun 500.
func (suite *TestSuiteStandard) createScenario() map[string]v1.Envelope {
	envelopes := make(map[string]v1.Envelope)

	for _, editable := range []v1.EnvelopeEditable{
		{Name: "Rent", FillSetting: "amount", FillAmount: decimal.NewFromInt(300)},
		{Name: "Savings", FillSetting: "percentage", FillAmount: decimal.NewFromInt(10)},
		{Name: "Groceries", FillSetting: "amount", FillAmount: decimal.NewFromInt(150), HasCap: true, CapAmount: decimal.NewFromInt(100)},
		{Name: "Fun", FillSetting: "fill", Extra: true},
	} {
		e := suite.createTestEnvelope(editable)
		suite.Require().NotNil(e.Data, "Envelope %s could not be created: %v", editable.Name, e.Error)
		envelopes[e.Data.Name] = *e.Data
	}

	return envelopes
}

// envelopes returns all envelopes in priority order.
func (suite *TestSuiteStandard) envelopes() []v1.Envelope {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

// assertAmounts checks the amounts of the named envelopes.
func (suite *TestSuiteStandard) assertAmounts(amounts map[string]int64) {
	actual := make(map[string]decimal.Decimal)
	for _, e := range suite.envelopes() {
		actual[e.Name] = e.Amount
	}

	for name, amount := range amounts {
		suite.Assert().True(actual[name].Equal(decimal.NewFromInt(amount)), "Amount of %s is wrong: should be %d, but is %s", name, amount, actual[name])
	}
}

// operation posts the body to the endpoint and decodes the response.
func (suite *TestSuiteStandard) operation(endpoint string, body any, expectedStatus int) v1.OperationResponse {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/"+endpoint, body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var response v1.OperationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

// info returns an info message with the text.
func info(text string) budget.Message {
	return budget.Message{Level: budget.LevelInfo, Text: text}
}
