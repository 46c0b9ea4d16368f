package v1

import (
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/shopspring/decimal"
)

// IncomeEditable contains the fields of an Income that clients can
// set. The ID is always assigned by the server.
type IncomeEditable struct {
	Date        types.Date      `json:"date" example:"2024-03-25"`  // The day the money was received
	Amount      decimal.Decimal `json:"amount" example:"250000"`    // The amount in yen, must be positive
	Description string          `json:"description" example:"給料"` // Where the money came from
}

// model returns the Income the editable fields describe.
func (e IncomeEditable) model() models.Income {
	return models.Income{
		Date:        e.Date,
		Amount:      e.Amount,
		Description: e.Description,
	}
}

type IncomeResponse struct {
	Data  *models.Income `json:"data"`                                                 // Data for the income
	Error *string        `json:"error" example:"the amount must be greater than zero"` // The error, if any occurred
}

type IncomeListResponse struct {
	Data  []models.Income `json:"data"`                                            // List of incomes
	Error *string         `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

// IncomeQueryFilter contains the supported query string parameters for
// the income list.
type IncomeQueryFilter struct {
	Month       string `form:"month"`       // By month in YYYY-MM format
	Description string `form:"description"` // By description, supports globbing with *
}
