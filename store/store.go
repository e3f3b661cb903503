package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"haverststudio-backend/models"
	"haverststudio-backend/seed"
)

// Store is the single state container for all six collections. Collections
// are ordered slices (insertion order, append-only) and every mutation
// writes the whole mutated collection back through the backend before
// returning. There is no batching and no cross-collection transaction: a
// crash between two saves can leave collections mutually inconsistent,
// which matches the persistence contract this store inherits.
//
// The mutex exists because gin serves requests concurrently; logically
// there is still one writer at a time.
type Store struct {
	mu      sync.RWMutex
	backend Backend

	clients       []models.Client
	appointments  []models.Appointment
	services      []models.Service
	transactions  []models.Transaction
	inventory     []models.InventoryItem
	notifications []models.Notification
}

// Open loads every collection from the backend, substituting seed data for
// any collection that has never been persisted.
func Open(backend Backend) (*Store, error) {
	s := &Store{backend: backend}

	var err error
	if s.clients, err = loadCollection(backend, CollectionClients, seed.Clients); err != nil {
		return nil, err
	}
	if s.appointments, err = loadCollection(backend, CollectionAppointments, seed.Appointments); err != nil {
		return nil, err
	}
	if s.services, err = loadCollection(backend, CollectionServices, seed.Services); err != nil {
		return nil, err
	}
	if s.transactions, err = loadCollection(backend, CollectionTransactions, seed.Transactions); err != nil {
		return nil, err
	}
	if s.inventory, err = loadCollection(backend, CollectionInventory, seed.Inventory); err != nil {
		return nil, err
	}
	if s.notifications, err = loadCollection(backend, CollectionNotifications, seed.Notifications); err != nil {
		return nil, err
	}

	return s, nil
}

func loadCollection[T any](backend Backend, name string, seedFn func() []T) ([]T, error) {
	data, err := backend.Load(name)
	if err == ErrCollectionNotFound {
		return seedFn(), nil
	}
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return records, nil
}

// saveCollection persists the full record sequence, replacing whatever was
// stored before. Callers hold the write lock.
func saveCollection[T any](backend Backend, name string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return backend.Save(name, data)
}

// Snapshot accessors. Each returns a copy of the collection slice so the
// aggregation layer can never mutate store state through a query result.

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Client(nil), s.clients...)
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Service(nil), s.services...)
}

func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.inventory...)
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}
