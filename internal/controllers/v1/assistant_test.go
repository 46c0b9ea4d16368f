package v1_test

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/assistant"
	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/test"
)

// All assistant tests run with a disabled client so no requests leave
// the test environment.

func (suite *TestSuiteStandard) TestAssistantOptions() {
	for _, path := range []string{
		"/v1/assistant/savings-tips",
		"/v1/assistant/receipt",
		"/v1/assistant/sales-info",
	} {
		r := test.Request(suite.router, suite.T(), http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestSavingsTipsDisabled() {
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/savings-tips", v1.SavingsTipsRequest{Month: "2024-03"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsTipsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Contains(*response.Data, "現在利用できません")
}

func (suite *TestSuiteStandard) TestSavingsTipsEmptyBody() {
	// The month defaults to the current one when no body is sent
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/savings-tips", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsTipsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Data)
}

func (suite *TestSuiteStandard) TestSavingsTipsInvalidMonth() {
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/savings-tips", v1.SavingsTipsRequest{Month: "March"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReceiptDisabled() {
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/receipt", map[string]string{
		"image":    "/9j/4AAQSkZJRg==",
		"mimeType": "image/jpeg",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	var response v1.ReceiptResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestReceiptInvalidBody() {
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/receipt", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/receipt", `{ "image": "not base64!" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSalesInfoInvalidLocation() {
	lat := 35.6581

	tests := []struct {
		name string
		body any
	}{
		{"empty", map[string]string{}},
		{"latitude only", assistant.Location{Latitude: &lat}},
		{"address and coordinates", map[string]any{"address": "東京都渋谷区", "latitude": 35.6581, "longitude": 139.7017}},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/sales-info", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.SalesInfoResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Error, tt.name)
	}
}

func (suite *TestSuiteStandard) TestSalesInfoDisabled() {
	r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/assistant/sales-info", assistant.Location{Address: "東京都渋谷区"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}
