package models

import (
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/shopspring/decimal"
)

// FixedCost is a recurring monthly item such as rent or an insurance
// premium. Fixed costs are not materialized as Expense records, the
// monthly report counts them into every month instead.
type FixedCost struct {
	ID          string            `json:"id" example:"e3f2b9b7-91ad-40de-8efc-b6c2e3bb52b8"` // UUID for the item
	Amount      decimal.Decimal   `json:"amount" example:"80000"`                            // Amount in yen, must be positive
	Category    taxonomy.Category `json:"category" example:"住居費"`                            // Category of the item
	Description string            `json:"description,omitempty" example:"家賃"`                // Free text, may be empty
}

// Validate checks the user-settable fields.
func (f FixedCost) Validate() error {
	if !f.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if !f.Category.Valid() {
		return ErrCategoryInvalid
	}
	return nil
}
