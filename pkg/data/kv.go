package data

// KeyValueStore is the small string store selections are mirrored to.
type KeyValueStore interface {
	// Get reports false when the key has never been written or was deleted.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// MemoryStore keeps entries in a map. It backs the app when the database
// cannot be opened, so selections simply do not outlive the session.
type MemoryStore struct {
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
