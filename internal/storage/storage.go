// Package storage persists the account book as a durable key/value
// store. Each collection is serialized as a whole and written under
// its own key, so corruption of one key never affects the others.
package storage

import "errors"

// Key identifies one independently persisted value.
type Key string

const (
	KeyExpenses   Key = "expenses"
	KeyIncomes    Key = "incomes"
	KeyBudgets    Key = "budgets"
	KeyFixedCosts Key = "fixed_costs"
)

// ErrGeneral is returned for database errors that we cannot provide
// more useful information about. The real error is logged.
var ErrGeneral = errors.New("an error occurred on the server during your request")

// Backend reads and writes serialized values.
//
// Read reports ok == false when the key has never been written, which
// is not an error: the caller falls back to its default value.
type Backend interface {
	Read(key Key) (value []byte, ok bool, err error)
	Write(key Key, value []byte) error
}
