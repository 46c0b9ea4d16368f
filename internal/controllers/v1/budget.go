package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetsEditable contains the complete budget configuration. Saving
// replaces the configuration wholesale, there is no incremental
// update.
type BudgetsEditable struct {
	Overall    decimal.Decimal                        `json:"overall" example:"300000"` // The overall monthly ceiling, 0 = unset
	Categories map[taxonomy.Category]decimal.Decimal `json:"categories"`               // Per category ceilings, 0 = unset
}

// model returns the Budgets the editable fields describe.
func (e BudgetsEditable) model() models.Budgets {
	return models.Budgets{
		Overall:    e.Overall,
		Categories: e.Categories,
	}
}

type BudgetsResponse struct {
	Data  *models.Budgets `json:"data"`                                         // The budget configuration
	Error *string         `json:"error" example:"the amount must not be negative"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for Budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgets)
	r.GET("", GetBudgets)
	r.PUT("", SaveBudgets)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budgets
// @Description	Returns the budget configuration
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetsResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	budgets := records.Budgets()
	c.JSON(http.StatusOK, BudgetsResponse{Data: &budgets})
}

// @Summary		Save budgets
// @Description	Replaces the budget configuration wholesale
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetsResponse
// @Failure		400		{object}	BudgetsResponse
// @Param			budgets	body		BudgetsEditable	true	"Budgets"
// @Router			/v1/budgets [put]
func SaveBudgets(c *gin.Context) {
	var editable BudgetsEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), BudgetsResponse{Error: &s})
		return
	}

	if err := records.SaveBudgets(editable.model()); err != nil {
		s := err.Error()
		c.JSON(status(c, err), BudgetsResponse{Error: &s})
		return
	}

	budgets := records.Budgets()
	c.JSON(http.StatusOK, BudgetsResponse{Data: &budgets})
}
