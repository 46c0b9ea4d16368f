package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/S-okubomy/account-book/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthsOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/months/share-text", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthSummary() {
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(1000), Category: taxonomy.CategoryFood})
	suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 3, 25), Amount: decimal.NewFromInt(5000), Description: "給料"})
	suite.createTestFixedCost(v1.FixedCostEditable{Amount: decimal.NewFromInt(2000), Category: taxonomy.CategoryHousing, Description: "家賃"})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(decimal.NewFromInt(3000).Equal(response.Data.TotalSpent))
	suite.Assert().True(decimal.NewFromInt(5000).Equal(response.Data.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(2000).Equal(response.Data.Balance))
	suite.Assert().True(decimal.NewFromInt(2000).Equal(response.Data.FixedCost))
	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data.VariableCost))
	suite.Assert().Len(response.Data.Expenses, 1)
	suite.Assert().Len(response.Data.Incomes, 1)
	suite.Assert().Len(response.Data.FixedCosts, 1)
}

func (suite *TestSuiteStandard) TestMonthSummaryBudget() {
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(2500), Category: taxonomy.CategoryFood})

	r := test.Request(suite.router, suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetsEditable{
		Overall: decimal.NewFromInt(2000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.router, suite.T(), http.MethodGet, "/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(decimal.NewFromInt(2000).Equal(response.Data.Budget.Limit))
	suite.Assert().True(decimal.NewFromInt(-500).Equal(response.Data.Budget.Remaining))
	suite.Assert().True(decimal.NewFromInt(125).Equal(response.Data.Budget.Progress))
}

func (suite *TestSuiteStandard) TestMonthSummaryDefaultsToCurrent() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	current := types.MonthOf(time.Now().UTC())
	suite.Assert().True(current.Equal(response.Data.Month))
}

func (suite *TestSuiteStandard) TestMonthSummaryInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"unparseable", "month=March"},
		{"future", fmt.Sprintf("month=%s", types.MonthOf(time.Now().UTC()).AddDate(0, 1))},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/months?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.MonthResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Error, tt.name)
	}
}

func (suite *TestSuiteStandard) TestShareText() {
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(1234), Category: taxonomy.CategoryFood})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/months/share-text?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ShareTextResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Contains(*response.Data, "【2024年3月の家計簿】")
	suite.Assert().Contains(*response.Data, "支出合計: 1,234円")
	suite.Assert().Contains(*response.Data, "#家計簿 #節約")
}

func (suite *TestSuiteStandard) TestShareTextInvalidMonth() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/months/share-text?month=never", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
