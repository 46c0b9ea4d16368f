package store

import (
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/storage"
)

// Budgets returns a copy of the budget configuration.
func (s *Store) Budgets() models.Budgets {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.budgets.Copy()
}

// SaveBudgets replaces the budget configuration wholesale. There is no
// incremental update path.
func (s *Store) SaveBudgets(budgets models.Budgets) error {
	if err := budgets.Validate(); err != nil {
		return err
	}

	if budgets.Categories == nil {
		budgets.Categories = models.DefaultBudgets().Categories
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets = budgets.Copy()
	s.persist(storage.KeyBudgets, s.budgets)

	return nil
}
