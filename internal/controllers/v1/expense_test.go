package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/S-okubomy/account-book/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpensesOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesOptionsDetail() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 5),
		Amount:   decimal.NewFromInt(1000),
		Category: taxonomy.CategoryFood,
	})

	r := test.Request(suite.router, suite.T(), http.MethodOptions, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.router, suite.T(), http.MethodOptions, fmt.Sprintf("/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:        types.NewDate(2024, 3, 5),
		Amount:      decimal.NewFromInt(1480),
		Category:    taxonomy.CategoryFood,
		Description: "スーパーで買い物",
	})

	suite.Require().NotNil(expense.Data)
	suite.Assert().NotEmpty(expense.Data.ID)
	suite.Assert().Equal(taxonomy.CategoryFood, expense.Data.Category)
	suite.Assert().True(decimal.NewFromInt(1480).Equal(expense.Data.Amount))
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"broken json", `{ broken`},
		{"wrong type", `{ "amount": "not a number" }`},
		{"zero amount", v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Category: taxonomy.CategoryFood}},
		{"unknown category", v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(100), Category: "ガジェット"}},
		{"no date", v1.ExpenseEditable{Amount: decimal.NewFromInt(100), Category: taxonomy.CategoryFood}},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/expenses", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.ExpenseResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Error, tt.name)
	}
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 5),
		Amount:   decimal.NewFromInt(1000),
		Category: taxonomy.CategoryFood,
	})

	r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expense.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("there is no record with this ID", *response.Error)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(1000), Category: taxonomy.CategoryFood})
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 20), Amount: decimal.NewFromInt(2000), Category: taxonomy.CategoryEatingOut})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	// Newest first
	suite.Assert().Equal(taxonomy.CategoryEatingOut, response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestExpensesFilter() {
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 5), Amount: decimal.NewFromInt(1000), Category: taxonomy.CategoryFood, Description: "スーパーで買い物"})
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 3, 20), Amount: decimal.NewFromInt(2000), Category: taxonomy.CategoryEatingOut, Description: "ラーメン"})
	suite.createTestExpense(v1.ExpenseEditable{Date: types.NewDate(2024, 4, 2), Amount: decimal.NewFromInt(3000), Category: taxonomy.CategoryFood, Description: "スーパーでまとめ買い"})

	tests := []struct {
		query string
		count int
	}{
		{"month=2024-03", 2},
		{"month=2024-04", 1},
		{"month=2024-05", 0},
		{"category=食費", 2},
		{"category=外食", 1},
		{"category=美容費", 0},
		{"description=スーパー*", 2},
		{"description=ラーメン", 1},
		{"month=2024-03&category=食費", 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ExpenseListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong number of results for %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestExpensesFilterInvalidMonth() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/expenses?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 5),
		Amount:   decimal.NewFromInt(1000),
		Category: taxonomy.CategoryFood,
	})

	r := test.Request(suite.router, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID), v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 6),
		Amount:   decimal.NewFromInt(1500),
		Category: taxonomy.CategoryEatingOut,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expense.Data.ID, response.Data.ID)
	suite.Assert().Equal(taxonomy.CategoryEatingOut, response.Data.Category)
}

func (suite *TestSuiteStandard) TestExpenseUpdateNotFound() {
	r := test.Request(suite.router, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", uuid.New()), v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 6),
		Amount:   decimal.NewFromInt(1500),
		Category: taxonomy.CategoryFood,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:     types.NewDate(2024, 3, 5),
		Amount:   decimal.NewFromInt(1000),
		Category: taxonomy.CategoryFood,
	})

	r := test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
