package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFixedCostsOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/fixed-costs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestFixedCostCreate() {
	fixedCost := suite.createTestFixedCost(v1.FixedCostEditable{
		Amount:      decimal.NewFromInt(80000),
		Category:    taxonomy.CategoryHousing,
		Description: "家賃",
	})

	suite.Require().NotNil(fixedCost.Data)
	suite.Assert().NotEmpty(fixedCost.Data.ID)
	suite.Assert().Equal(taxonomy.CategoryHousing, fixedCost.Data.Category)
}

func (suite *TestSuiteStandard) TestFixedCostCreateInvalid() {
	response := suite.createTestFixedCost(v1.FixedCostEditable{
		Category: taxonomy.CategoryHousing,
	}, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the amount must be larger than zero", *response.Error)
}

func (suite *TestSuiteStandard) TestFixedCostsList() {
	rent := suite.createTestFixedCost(v1.FixedCostEditable{Amount: decimal.NewFromInt(80000), Category: taxonomy.CategoryHousing, Description: "家賃"})
	phone := suite.createTestFixedCost(v1.FixedCostEditable{Amount: decimal.NewFromInt(3000), Category: taxonomy.CategoryCommunication, Description: "スマホ"})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/fixed-costs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FixedCostListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	// Insertion order
	suite.Assert().Equal(rent.Data.ID, response.Data[0].ID)
	suite.Assert().Equal(phone.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestFixedCostsFilter() {
	suite.createTestFixedCost(v1.FixedCostEditable{Amount: decimal.NewFromInt(80000), Category: taxonomy.CategoryHousing, Description: "家賃"})
	suite.createTestFixedCost(v1.FixedCostEditable{Amount: decimal.NewFromInt(3000), Category: taxonomy.CategoryCommunication, Description: "スマホ"})

	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/fixed-costs?category=住居費", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FixedCostListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(taxonomy.CategoryHousing, response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestFixedCostUpdateDelete() {
	fixedCost := suite.createTestFixedCost(v1.FixedCostEditable{
		Amount:      decimal.NewFromInt(80000),
		Category:    taxonomy.CategoryHousing,
		Description: "家賃",
	})

	r := test.Request(suite.router, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/fixed-costs/%s", fixedCost.Data.ID), v1.FixedCostEditable{
		Amount:      decimal.NewFromInt(85000),
		Category:    taxonomy.CategoryHousing,
		Description: "家賃",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FixedCostResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(85000).Equal(response.Data.Amount))

	r = test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/fixed-costs/%s", fixedCost.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestFixedCostNotFound() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/fixed-costs/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
