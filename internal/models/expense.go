// Package models defines the records the account book keeps.
package models

import (
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is a single outgoing record. Amounts are whole yen.
type Expense struct {
	ID          string            `json:"id" example:"5985e9d7-3e33-4b27-a22a-54e33b9fa8f9"` // UUID for the record
	Date        types.Date        `json:"date" example:"2024-03-05"`                         // Day the expense occurred
	Amount      decimal.Decimal   `json:"amount" example:"1000"`                             // Amount in yen, must be positive
	Category    taxonomy.Category `json:"category" example:"食費"`                             // Category of the expense
	Description string            `json:"description,omitempty" example:"スーパーで買い物"`          // Free text, may be empty
}

// Validate checks the user-settable fields. The category must be a
// current taxonomy member: records restored from storage may carry a
// stale category, but new and edited records may not.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrDateNotSet
	}
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}
	return nil
}
