// Package report derives the monthly view from the raw record
// collections. All derivations are pure: they never mutate their
// inputs and recompute from scratch on every call.
package report

import (
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetStatus is the derived state of one spending ceiling.
// A Limit of zero means the ceiling is unset; Remaining and Progress
// are zero in that case.
type BudgetStatus struct {
	Limit     decimal.Decimal `json:"limit" example:"300000"`    // The configured ceiling, 0 = unset
	Remaining decimal.Decimal `json:"remaining" example:"120000"` // Limit minus spent, may be negative
	Progress  decimal.Decimal `json:"progress" example:"60"`      // Spent as a percentage of the limit
}

// MonthSummary is the derived, non-persisted view of a single month.
type MonthSummary struct {
	Month       types.Month        `json:"month" example:"2024-03-01T00:00:00Z"` // The month this summary describes
	Expenses    []models.Expense   `json:"expenses"`                             // Expense records dated in the month, newest first
	Incomes     []models.Income    `json:"incomes"`                              // Income records dated in the month, newest first
	FixedCosts  []models.FixedCost `json:"fixedCosts"`                           // Recurring items counted into every month
	TotalSpent  decimal.Decimal    `json:"totalSpent" example:"180000"`          // Sum of expenses and fixed costs
	TotalIncome decimal.Decimal    `json:"totalIncome" example:"250000"`         // Sum of incomes
	Balance     decimal.Decimal    `json:"balance" example:"70000"`              // TotalIncome minus TotalSpent, may be negative

	FixedCost    decimal.Decimal `json:"fixedCost" example:"110000"`   // Spending in fixed-type categories
	VariableCost decimal.Decimal `json:"variableCost" example:"70000"` // Spending in variable-type categories

	ByCategory map[taxonomy.Category]decimal.Decimal `json:"byCategory"` // Spending per category, categories without spending are absent

	Budget          BudgetStatus                           `json:"budget"`          // Derived state of the overall ceiling
	CategoryBudgets map[taxonomy.Category]BudgetStatus     `json:"categoryBudgets"` // Derived state per category ceiling, unset ceilings are absent
}

// Summarize computes the monthly view.
//
// The month window runs from the first through the last calendar day,
// both inclusive. Fixed costs are counted into every month on top of
// the expense records. An expense whose category is no longer part of
// the taxonomy still counts into TotalSpent and ByCategory and is
// treated as variable spending.
func Summarize(month types.Month, expenses []models.Expense, incomes []models.Income, fixedCosts []models.FixedCost, budgets models.Budgets) MonthSummary {
	summary := MonthSummary{
		Month:           month,
		Expenses:        []models.Expense{},
		Incomes:         []models.Income{},
		FixedCosts:      make([]models.FixedCost, len(fixedCosts)),
		ByCategory:      map[taxonomy.Category]decimal.Decimal{},
		CategoryBudgets: map[taxonomy.Category]BudgetStatus{},
	}
	copy(summary.FixedCosts, fixedCosts)

	for _, expense := range expenses {
		if !expense.Date.In(month) {
			continue
		}

		summary.Expenses = append(summary.Expenses, expense)
		summary.count(expense.Amount, expense.Category)
	}

	for _, fixedCost := range fixedCosts {
		summary.count(fixedCost.Amount, fixedCost.Category)
	}

	for _, income := range incomes {
		if !income.Date.In(month) {
			continue
		}

		summary.Incomes = append(summary.Incomes, income)
		summary.TotalIncome = summary.TotalIncome.Add(income.Amount)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalSpent)

	summary.Budget = budgetStatus(budgets.Overall, summary.TotalSpent)
	for category, limit := range budgets.Categories {
		if !limit.IsPositive() {
			continue
		}

		summary.CategoryBudgets[category] = budgetStatus(limit, summary.ByCategory[category])
	}

	return summary
}

// count adds one outgoing amount to the totals, the category mapping
// and the fixed/variable split.
func (s *MonthSummary) count(amount decimal.Decimal, category taxonomy.Category) {
	s.TotalSpent = s.TotalSpent.Add(amount)
	s.ByCategory[category] = s.ByCategory[category].Add(amount)

	expenseType, ok := category.Type()
	if !ok {
		// Stale category from an earlier taxonomy revision
		log.Debug().Str("category", string(category)).Msg("report: unknown category counted as variable")
	}

	switch expenseType {
	case taxonomy.Fixed:
		s.FixedCost = s.FixedCost.Add(amount)
	default:
		s.VariableCost = s.VariableCost.Add(amount)
	}
}

// budgetStatus derives the remainder and progress for one ceiling.
// A limit of zero is the sentinel for "unset" and yields zero progress
// instead of a division error.
func budgetStatus(limit, spent decimal.Decimal) BudgetStatus {
	status := BudgetStatus{Limit: limit}

	if !limit.IsPositive() {
		return status
	}

	status.Remaining = limit.Sub(spent)
	status.Progress = spent.Div(limit).Mul(decimal.NewFromInt(100))

	return status
}
