package store

import "errors"

// Storage keys, one per collection.
const (
	CollectionClients       = "clients"
	CollectionAppointments  = "appointments"
	CollectionServices      = "services"
	CollectionTransactions  = "transactions"
	CollectionInventory     = "inventory"
	CollectionNotifications = "notifications"
)

var (
	// ErrNotFound is returned by update operations targeting an id that
	// does not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrCollectionNotFound is returned by Backend.Load when nothing has
	// been persisted under the key yet; callers fall back to seed data.
	ErrCollectionNotFound = errors.New("collection not found")
)

// Backend persists whole collections under a key. Save fully replaces the
// previous contents of the key; there is no delta encoding and no
// transactional guarantee across keys.
type Backend interface {
	Load(collection string) ([]byte, error)
	Save(collection string, data []byte) error
}
