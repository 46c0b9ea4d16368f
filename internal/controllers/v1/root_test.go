package v1_test

import (
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/test"
)

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("/v1/incomes", response.Links.Incomes)
	suite.Assert().Equal("/v1/fixed-costs", response.Links.FixedCosts)
	suite.Assert().Equal("/v1/budgets", response.Links.Budgets)
	suite.Assert().Equal("/v1/categories", response.Links.Categories)
	suite.Assert().Equal("/v1/months", response.Links.Months)
	suite.Assert().Equal("/v1/assistant", response.Links.Assistant)
}
