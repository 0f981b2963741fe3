package store

// MapStore is a KVStore backed by a plain map. It is the bottom layer of
// MemStore.
type MapStore struct {
	data map[string][]byte
}

var _ KVStore = (*MapStore)(nil)

func NewMapStore() *MapStore {
	return &MapStore{data: make(map[string][]byte)}
}

func (m *MapStore) Get(key []byte) ([]byte, error) {
	return m.data[string(key)], nil
}

func (m *MapStore) Has(key []byte) (bool, error) {
	_, ok := m.data[string(key)]
	return ok, nil
}

func (m *MapStore) Set(key, value []byte) error {
	m.data[string(key)] = append([]byte{}, value...)
	return nil
}

func (m *MapStore) Delete(key []byte) error {
	delete(m.data, string(key))
	return nil
}

// NewBatch returns a batch writing to this store.
func (m *MapStore) NewBatch() Batch {
	return NewNonAtomicBatch(m)
}

// Len returns the number of stored keys.
func (m *MapStore) Len() int {
	return len(m.data)
}
