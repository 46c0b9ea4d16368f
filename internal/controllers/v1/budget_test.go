package v1_test

import (
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsGetDefault() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Overall.IsZero())
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestBudgetsSave() {
	r := test.Request(suite.router, suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetsEditable{
		Overall: decimal.NewFromInt(300000),
		Categories: map[taxonomy.Category]decimal.Decimal{
			taxonomy.CategoryFood: decimal.NewFromInt(40000),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(300000).Equal(response.Data.Overall))
	suite.Assert().True(decimal.NewFromInt(40000).Equal(response.Data.Categories[taxonomy.CategoryFood]))
}

func (suite *TestSuiteStandard) TestBudgetsSaveReplacesWholesale() {
	r := test.Request(suite.router, suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetsEditable{
		Categories: map[taxonomy.Category]decimal.Decimal{
			taxonomy.CategoryFood: decimal.NewFromInt(40000),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.router, suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetsEditable{
		Categories: map[taxonomy.Category]decimal.Decimal{
			taxonomy.CategoryBeauty: decimal.NewFromInt(5000),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Categories, 1)
	suite.Assert().Contains(response.Data.Categories, taxonomy.CategoryBeauty)
}

func (suite *TestSuiteStandard) TestBudgetsSaveInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"negative overall", v1.BudgetsEditable{Overall: decimal.NewFromInt(-1)}},
		{"unknown category", v1.BudgetsEditable{Categories: map[taxonomy.Category]decimal.Decimal{"ガジェット": decimal.NewFromInt(1000)}}},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodPut, "/v1/budgets", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.BudgetsResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Error, tt.name)
	}
}
