package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterIncomeRoutes registers the routes for Incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	_, err := records.GetIncome(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List incomes
// @Description	Returns a list of incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200			{object}	IncomeListResponse
// @Failure		400			{object}	IncomeListResponse
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Param			description	query		string	false	"Filter by description, supports globbing with *"
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidBody.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &s})
		return
	}

	var month types.Month
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(c, err), IncomeListResponse{Error: &s})
			return
		}
	}

	incomes := []models.Income{}
	for _, income := range records.Incomes() {
		if !month.IsZero() && !income.Date.In(month) {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, income.Description) {
			continue
		}

		incomes = append(incomes, income)
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: incomes})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	income, err := records.GetIncome(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// @Summary		Create income
// @Description	Creates a new income
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	income, err := records.AddIncome(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}

// @Summary		Update income
// @Description	Updates an existing income, replacing all fields except the ID
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Param			id		path		string			true	"ID of the income"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	income, err := records.UpdateIncome(c.Param("id"), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	if err := records.DeleteIncome(c.Param("id")); err != nil {
		s := err.Error()
		c.JSON(status(c, err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
