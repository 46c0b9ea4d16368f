package store

import (
	"strings"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/google/uuid"
)

// FixedCosts returns a copy of the fixed cost collection in insertion
// order.
func (s *Store) FixedCosts() []models.FixedCost {
	s.mu.Lock()
	defer s.mu.Unlock()

	fixedCosts := make([]models.FixedCost, len(s.fixedCosts))
	copy(fixedCosts, s.fixedCosts)
	return fixedCosts
}

// AddFixedCost validates the item, assigns a new ID and inserts it.
func (s *Store) AddFixedCost(fixedCost models.FixedCost) (models.FixedCost, error) {
	fixedCost.Description = strings.TrimSpace(fixedCost.Description)
	if err := fixedCost.Validate(); err != nil {
		return models.FixedCost{}, err
	}

	fixedCost.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fixedCosts = append(s.fixedCosts, fixedCost)
	s.persist(storage.KeyFixedCosts, s.fixedCosts)

	return fixedCost, nil
}

// UpdateFixedCost replaces all fields except the ID for the matching
// item.
func (s *Store) UpdateFixedCost(id string, fixedCost models.FixedCost) (models.FixedCost, error) {
	fixedCost.Description = strings.TrimSpace(fixedCost.Description)
	if err := fixedCost.Validate(); err != nil {
		return models.FixedCost{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fixedCosts {
		if s.fixedCosts[i].ID == id {
			fixedCost.ID = id
			s.fixedCosts[i] = fixedCost
			s.persist(storage.KeyFixedCosts, s.fixedCosts)
			return fixedCost, nil
		}
	}

	return models.FixedCost{}, ErrNotFound
}

// DeleteFixedCost removes the matching item.
func (s *Store) DeleteFixedCost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fixedCosts {
		if s.fixedCosts[i].ID == id {
			s.fixedCosts = append(s.fixedCosts[:i], s.fixedCosts[i+1:]...)
			s.persist(storage.KeyFixedCosts, s.fixedCosts)
			return nil
		}
	}

	return ErrNotFound
}

// GetFixedCost returns the item with the given ID.
func (s *Store) GetFixedCost(id string) (models.FixedCost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fixedCost := range s.fixedCosts {
		if fixedCost.ID == id {
			return fixedCost, nil
		}
	}

	return models.FixedCost{}, ErrNotFound
}
