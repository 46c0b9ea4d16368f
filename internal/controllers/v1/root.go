package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`      // URL of the expense collection endpoint
	Incomes    string `json:"incomes" example:"https://example.com/api/v1/incomes"`        // URL of the income collection endpoint
	FixedCosts string `json:"fixedCosts" example:"https://example.com/api/v1/fixed-costs"` // URL of the fixed cost collection endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`        // URL of the budget endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"`  // URL of the category list endpoint
	Months     string `json:"months" example:"https://example.com/api/v1/months"`          // URL of the month summary endpoint
	Assistant  string `json:"assistant" example:"https://example.com/api/v1/assistant"`    // URL of the assistant endpoints
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString("baseURL")

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Expenses:   url + "/v1/expenses",
			Incomes:    url + "/v1/incomes",
			FixedCosts: url + "/v1/fixed-costs",
			Budgets:    url + "/v1/budgets",
			Categories: url + "/v1/categories",
			Months:     url + "/v1/months",
			Assistant:  url + "/v1/assistant",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
