package models

import (
	"strings"

	"github.com/S-okubomy/account-book/internal/types"
	"github.com/shopspring/decimal"
)

// Income is a single incoming record. Unlike expenses, incomes are not
// categorized, the description is the only label and therefore required.
type Income struct {
	ID          string          `json:"id" example:"9a7a6b49-6d2a-4a8e-a2bd-4f92bfbcb6cd"` // UUID for the record
	Date        types.Date      `json:"date" example:"2024-03-01"`                         // Day the income was received
	Amount      decimal.Decimal `json:"amount" example:"250000"`                           // Amount in yen, must be positive
	Description string          `json:"description" example:"給料"`                          // What the income is
}

// Validate checks the user-settable fields.
func (i Income) Validate() error {
	if i.Date.IsZero() {
		return ErrDateNotSet
	}
	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if strings.TrimSpace(i.Description) == "" {
		return ErrDescriptionNotSet
	}
	return nil
}
