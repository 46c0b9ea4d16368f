package v1_test

import (
	"net/http"

	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/test"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.router, suite.T(), http.MethodOptions, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	r := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, len(taxonomy.All))

	// Display order matches the taxonomy
	suite.Assert().Equal(taxonomy.CategoryHousing, response.Data[0].Name)
	suite.Assert().Equal(taxonomy.Fixed, response.Data[0].Type)

	suite.Assert().Equal(taxonomy.CategoryOther, response.Data[len(response.Data)-1].Name)
	suite.Assert().Equal(taxonomy.Variable, response.Data[len(response.Data)-1].Type)
}
