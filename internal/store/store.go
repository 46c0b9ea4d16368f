// Package store holds the account book in memory and mirrors every
// mutation to durable storage.
//
// The in-memory state is authoritative for the running session: a
// failing storage write is logged and the mutation is kept, it is
// never rolled back. On startup each collection is restored
// independently, a corrupt value resets only its own key to the
// default.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = errors.New("there is no record with this ID")

// Store owns the expense, income and fixed cost collections and the
// budget configuration.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend

	expenses   []models.Expense
	incomes    []models.Income
	fixedCosts []models.FixedCost
	budgets    models.Budgets
}

// Open restores the account book from the backend.
func Open(backend storage.Backend) *Store {
	s := &Store{
		backend: backend,
		budgets: models.DefaultBudgets(),
	}

	load(backend, storage.KeyExpenses, &s.expenses)
	load(backend, storage.KeyIncomes, &s.incomes)
	load(backend, storage.KeyFixedCosts, &s.fixedCosts)
	load(backend, storage.KeyBudgets, &s.budgets)

	// Storage is not trusted to be ordered
	sortExpenses(s.expenses)
	sortIncomes(s.incomes)

	return s
}

// load reads one key and leaves the default value in place when the
// key is missing or its value cannot be decoded.
func load(backend storage.Backend, key storage.Key, target any) {
	value, ok, err := backend.Read(key)
	if err != nil {
		log.Error().Err(err).Str("key", string(key)).Msg("store: restore failed, starting with default")
		return
	}
	if !ok {
		return
	}

	if err := json.Unmarshal(value, target); err != nil {
		log.Error().Err(err).Str("key", string(key)).Msg("store: corrupt value, starting with default")
	}
}

// persist serializes one collection and writes it to the backend.
// Write failures are logged and swallowed, the in-memory state stays
// authoritative for the session.
func (s *Store) persist(key storage.Key, value any) {
	serialized, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", string(key)).Msg("store: serialization failed")
		return
	}

	if err := s.backend.Write(key, serialized); err != nil {
		log.Error().Err(err).Str("key", string(key)).Msg("store: persisting failed")
	}
}
