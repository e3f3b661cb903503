package store

import "sync"

// MemoryBackend keeps collections in a map. Used by tests and for running
// the server without durable state.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(collection string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.data[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) Save(collection string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[collection] = append([]byte(nil), data...)
	return nil
}
