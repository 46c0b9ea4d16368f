package store

import (
	"sort"
	"strings"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/google/uuid"
)

func sortIncomes(incomes []models.Income) {
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Date.After(incomes[j].Date)
	})
}

// Incomes returns a copy of the income collection, newest first.
func (s *Store) Incomes() []models.Income {
	s.mu.Lock()
	defer s.mu.Unlock()

	incomes := make([]models.Income, len(s.incomes))
	copy(incomes, s.incomes)
	return incomes
}

// AddIncome validates the income, assigns a new ID and inserts it.
func (s *Store) AddIncome(income models.Income) (models.Income, error) {
	income.Description = strings.TrimSpace(income.Description)
	if err := income.Validate(); err != nil {
		return models.Income{}, err
	}

	income.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.incomes = append(s.incomes, income)
	sortIncomes(s.incomes)
	s.persist(storage.KeyIncomes, s.incomes)

	return income, nil
}

// UpdateIncome replaces all fields except the ID for the matching
// record.
func (s *Store) UpdateIncome(id string, income models.Income) (models.Income, error) {
	income.Description = strings.TrimSpace(income.Description)
	if err := income.Validate(); err != nil {
		return models.Income{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incomes {
		if s.incomes[i].ID == id {
			income.ID = id
			s.incomes[i] = income
			sortIncomes(s.incomes)
			s.persist(storage.KeyIncomes, s.incomes)
			return income, nil
		}
	}

	return models.Income{}, ErrNotFound
}

// DeleteIncome removes the matching record.
func (s *Store) DeleteIncome(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incomes {
		if s.incomes[i].ID == id {
			s.incomes = append(s.incomes[:i], s.incomes[i+1:]...)
			s.persist(storage.KeyIncomes, s.incomes)
			return nil
		}
	}

	return ErrNotFound
}

// GetIncome returns the record with the given ID.
func (s *Store) GetIncome(id string) (models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, income := range s.incomes {
		if income.ID == id {
			return income, nil
		}
	}

	return models.Income{}, ErrNotFound
}
