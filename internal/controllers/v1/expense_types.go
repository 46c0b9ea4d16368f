package v1

import (
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable contains the fields of an Expense that clients can
// set. The ID is always assigned by the server.
type ExpenseEditable struct {
	Date        types.Date        `json:"date" example:"2024-03-15"`            // The day the money was spent
	Amount      decimal.Decimal   `json:"amount" example:"1480"`                // The amount in yen, must be positive
	Category    taxonomy.Category `json:"category" example:"食費"`                // One of the expense categories
	Description string            `json:"description" example:"スーパーでの買い物"` // What the money was spent on
}

// model returns the Expense the editable fields describe.
func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`                                                // Data for the expense
	Error *string         `json:"error" example:"the amount must be greater than zero"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`                                                       // List of expenses
	Error *string          `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

// ExpenseQueryFilter contains the supported query string parameters
// for the expense list.
type ExpenseQueryFilter struct {
	Month       string `form:"month"`       // By month in YYYY-MM format
	Category    string `form:"category"`    // By exact category
	Description string `form:"description"` // By description, supports globbing with *
}
