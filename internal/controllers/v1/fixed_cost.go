package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FixedCostEditable contains the fields of a FixedCost that clients
// can set. The ID is always assigned by the server.
type FixedCostEditable struct {
	Amount      decimal.Decimal   `json:"amount" example:"85000"`      // The monthly amount in yen, must be positive
	Category    taxonomy.Category `json:"category" example:"住居費"`   // One of the expense categories
	Description string            `json:"description" example:"家賃"` // What the recurring payment is for
}

// model returns the FixedCost the editable fields describe.
func (e FixedCostEditable) model() models.FixedCost {
	return models.FixedCost{
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	}
}

type FixedCostResponse struct {
	Data  *models.FixedCost `json:"data"`                                                 // Data for the fixed cost
	Error *string           `json:"error" example:"the amount must be greater than zero"` // The error, if any occurred
}

type FixedCostListResponse struct {
	Data  []models.FixedCost `json:"data"`                                            // List of fixed costs
	Error *string            `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

// RegisterFixedCostRoutes registers the routes for FixedCosts with
// the RouterGroup that is passed.
func RegisterFixedCostRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFixedCostList)
		r.GET("", GetFixedCosts)
		r.POST("", CreateFixedCost)
	}

	// FixedCost with ID
	{
		r.OPTIONS("/:id", OptionsFixedCostDetail)
		r.GET("/:id", GetFixedCost)
		r.PATCH("/:id", UpdateFixedCost)
		r.DELETE("/:id", DeleteFixedCost)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FixedCosts
// @Success		204
// @Router			/v1/fixed-costs [options]
func OptionsFixedCostList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FixedCosts
// @Success		204
// @Failure		404	{object}	FixedCostResponse
// @Param			id	path		string	true	"ID of the fixed cost"
// @Router			/v1/fixed-costs/{id} [options]
func OptionsFixedCostDetail(c *gin.Context) {
	_, err := records.GetFixedCost(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List fixed costs
// @Description	Returns the recurring monthly payments in insertion order
// @Tags			FixedCosts
// @Produce		json
// @Success		200			{object}	FixedCostListResponse
// @Param			category	query		string	false	"Filter by category"
// @Router			/v1/fixed-costs [get]
func GetFixedCosts(c *gin.Context) {
	category := taxonomy.Category(c.Query("category"))

	fixedCosts := []models.FixedCost{}
	for _, fixedCost := range records.FixedCosts() {
		if category != "" && fixedCost.Category != category {
			continue
		}

		fixedCosts = append(fixedCosts, fixedCost)
	}

	c.JSON(http.StatusOK, FixedCostListResponse{Data: fixedCosts})
}

// @Summary		Get fixed cost
// @Description	Returns a specific fixed cost
// @Tags			FixedCosts
// @Produce		json
// @Success		200	{object}	FixedCostResponse
// @Failure		404	{object}	FixedCostResponse
// @Param			id	path		string	true	"ID of the fixed cost"
// @Router			/v1/fixed-costs/{id} [get]
func GetFixedCost(c *gin.Context) {
	fixedCost, err := records.GetFixedCost(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, FixedCostResponse{Data: &fixedCost})
}

// @Summary		Create fixed cost
// @Description	Creates a new recurring monthly payment
// @Tags			FixedCosts
// @Accept			json
// @Produce		json
// @Success		201			{object}	FixedCostResponse
// @Failure		400			{object}	FixedCostResponse
// @Param			fixedCost	body		FixedCostEditable	true	"FixedCost"
// @Router			/v1/fixed-costs [post]
func CreateFixedCost(c *gin.Context) {
	var editable FixedCostEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	fixedCost, err := records.AddFixedCost(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, FixedCostResponse{Data: &fixedCost})
}

// @Summary		Update fixed cost
// @Description	Updates an existing fixed cost, replacing all fields except the ID
// @Tags			FixedCosts
// @Accept			json
// @Produce		json
// @Success		200			{object}	FixedCostResponse
// @Failure		400			{object}	FixedCostResponse
// @Failure		404			{object}	FixedCostResponse
// @Param			id			path		string				true	"ID of the fixed cost"
// @Param			fixedCost	body		FixedCostEditable	true	"FixedCost"
// @Router			/v1/fixed-costs/{id} [patch]
func UpdateFixedCost(c *gin.Context) {
	var editable FixedCostEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	fixedCost, err := records.UpdateFixedCost(c.Param("id"), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, FixedCostResponse{Data: &fixedCost})
}

// @Summary		Delete fixed cost
// @Description	Deletes a fixed cost
// @Tags			FixedCosts
// @Success		204
// @Failure		404	{object}	FixedCostResponse
// @Param			id	path		string	true	"ID of the fixed cost"
// @Router			/v1/fixed-costs/{id} [delete]
func DeleteFixedCost(c *gin.Context) {
	if err := records.DeleteFixedCost(c.Param("id")); err != nil {
		s := err.Error()
		c.JSON(status(c, err), FixedCostResponse{Error: &s})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
