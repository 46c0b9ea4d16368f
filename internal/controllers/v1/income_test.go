package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/S-okubomy/account-book/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomesOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestIncomeCreate() {
	income := suite.createTestIncome(v1.IncomeEditable{
		Date:        types.NewDate(2024, 3, 25),
		Amount:      decimal.NewFromInt(250000),
		Description: "給料",
	})

	suite.Require().NotNil(income.Data)
	suite.Assert().NotEmpty(income.Data.ID)
	suite.Assert().Equal("給料", income.Data.Description)
}

func (suite *TestSuiteStandard) TestIncomeCreateInvalid() {
	// The description is required for incomes
	response := suite.createTestIncome(v1.IncomeEditable{
		Date:   types.NewDate(2024, 3, 25),
		Amount: decimal.NewFromInt(250000),
	}, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the description must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestIncomesList() {
	suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 3, 1), Amount: decimal.NewFromInt(10000), Description: "フリマ売上"})
	newest := suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 3, 25), Amount: decimal.NewFromInt(250000), Description: "給料"})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(newest.Data.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestIncomesFilter() {
	suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 3, 25), Amount: decimal.NewFromInt(250000), Description: "給料"})
	suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 4, 25), Amount: decimal.NewFromInt(250000), Description: "給料"})
	suite.createTestIncome(v1.IncomeEditable{Date: types.NewDate(2024, 3, 10), Amount: decimal.NewFromInt(5000), Description: "フリマ売上"})

	tests := []struct {
		query string
		count int
	}{
		{"month=2024-03", 2},
		{"month=2024-04", 1},
		{"description=給料", 2},
		{"description=フリマ*", 1},
		{"month=2024-03&description=給料", 1},
	}

	for _, tt := range tests {
		r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.IncomeListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong number of results for %s", tt.query)
	}
}

func (suite *TestSuiteStandard) TestIncomeUpdateDelete() {
	income := suite.createTestIncome(v1.IncomeEditable{
		Date:        types.NewDate(2024, 3, 25),
		Amount:      decimal.NewFromInt(250000),
		Description: "給料",
	})

	r := test.Request(suite.router, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/incomes/%s", income.Data.ID), v1.IncomeEditable{
		Date:        types.NewDate(2024, 3, 25),
		Amount:      decimal.NewFromInt(260000),
		Description: "給料",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(260000).Equal(response.Data.Amount))

	r = test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/incomes/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomeNotFound() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
