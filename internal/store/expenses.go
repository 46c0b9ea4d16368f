package store

import (
	"sort"
	"strings"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/google/uuid"
)

// sortExpenses orders a collection by date, newest first. Records
// sharing a date keep their insertion order.
func sortExpenses(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}

// Expenses returns a copy of the expense collection, newest first.
func (s *Store) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := make([]models.Expense, len(s.expenses))
	copy(expenses, s.expenses)
	return expenses
}

// AddExpense validates the expense, assigns a new ID and inserts it.
func (s *Store) AddExpense(expense models.Expense) (models.Expense, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	if err := expense.Validate(); err != nil {
		return models.Expense{}, err
	}

	expense.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append(s.expenses, expense)
	sortExpenses(s.expenses)
	s.persist(storage.KeyExpenses, s.expenses)

	return expense, nil
}

// UpdateExpense replaces all fields except the ID for the matching
// record.
func (s *Store) UpdateExpense(id string, expense models.Expense) (models.Expense, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	if err := expense.Validate(); err != nil {
		return models.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			expense.ID = id
			s.expenses[i] = expense
			sortExpenses(s.expenses)
			s.persist(storage.KeyExpenses, s.expenses)
			return expense, nil
		}
	}

	return models.Expense{}, ErrNotFound
}

// DeleteExpense removes the matching record.
func (s *Store) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			s.persist(storage.KeyExpenses, s.expenses)
			return nil
		}
	}

	return ErrNotFound
}

// GetExpense returns the record with the given ID.
func (s *Store) GetExpense(id string) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, expense := range s.expenses {
		if expense.ID == id {
			return expense, nil
		}
	}

	return models.Expense{}, ErrNotFound
}
