package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterExpenseRoutes registers the routes for Expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	_, err := records.GetExpense(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Param			category	query		string	false	"Filter by category"
// @Param			description	query		string	false	"Filter by description, supports globbing with *"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidBody.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	var month types.Month
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(c, err), ExpenseListResponse{Error: &s})
			return
		}
	}

	expenses := []models.Expense{}
	for _, expense := range records.Expenses() {
		if !month.IsZero() && !expense.Date.In(month) {
			continue
		}

		if filter.Category != "" && string(expense.Category) != filter.Category {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, expense.Description) {
			continue
		}

		expenses = append(expenses, expense)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	expense, err := records.GetExpense(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	expense, err := records.AddExpense(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense, replacing all fields except the ID
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	expense, err := records.UpdateExpense(c.Param("id"), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	if err := records.DeleteExpense(c.Param("id")); err != nil {
		s := err.Error()
		c.JSON(status(c, err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
