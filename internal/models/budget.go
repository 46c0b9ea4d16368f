package models

import (
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/shopspring/decimal"
)

// Budgets holds the monthly spending ceilings. A value of zero means
// "unset", not a zero ceiling, so zero and missing entries are
// equivalent. Budgets are only ever replaced wholesale.
type Budgets struct {
	Overall    decimal.Decimal                       `json:"overall" example:"300000"` // Ceiling for the whole month, 0 = unset
	Categories map[taxonomy.Category]decimal.Decimal `json:"categories"`               // Per-category ceilings, 0 = unset
}

// DefaultBudgets returns the all-unset configuration used before the
// user saves budgets for the first time.
func DefaultBudgets() Budgets {
	return Budgets{
		Overall:    decimal.Zero,
		Categories: map[taxonomy.Category]decimal.Decimal{},
	}
}

// Validate checks that no ceiling is negative and that every
// per-category key is a taxonomy member.
func (b Budgets) Validate() error {
	if b.Overall.IsNegative() {
		return ErrBudgetAmountNegative
	}

	for category, limit := range b.Categories {
		if !category.Valid() {
			return ErrCategoryInvalid
		}
		if limit.IsNegative() {
			return ErrBudgetAmountNegative
		}
	}

	return nil
}

// Copy returns a deep copy so that callers can not alias the
// category map.
func (b Budgets) Copy() Budgets {
	categories := make(map[taxonomy.Category]decimal.Decimal, len(b.Categories))
	for category, limit := range b.Categories {
		categories[category] = limit
	}

	return Budgets{
		Overall:    b.Overall,
		Categories: categories,
	}
}
