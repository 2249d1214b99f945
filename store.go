package counter

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
)

// Store is the storage engine behind the contract's slots.
// Unwritten slots read as the zero word.
type Store interface {
	// Load returns the word held in slot.
	Load(ctx context.Context, slot common.Hash) (common.Hash, error)

	// Commit writes all slot words atomically.
	Commit(ctx context.Context, writes map[common.Hash]common.Hash) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[common.Hash]common.Hash
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[common.Hash]common.Hash)}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, slot common.Hash) (common.Hash, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slots[slot], nil
}

// Commit implements Store.
func (m *MemoryStore) Commit(_ context.Context, writes map[common.Hash]common.Hash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for slot, word := range writes {
		m.slots[slot] = word
	}
	return nil
}

// DatabaseStore keeps slots in a go-ethereum key-value database, such as
// memorydb or a leveldb/pebble instance. Keys are prefix||slot.
type DatabaseStore struct {
	db     ethdb.KeyValueStore
	prefix []byte
}

// NewDatabaseStore creates a DatabaseStore. The prefix namespaces the
// contract's slots so several contracts can share one database.
func NewDatabaseStore(db ethdb.KeyValueStore, prefix []byte) *DatabaseStore {
	return &DatabaseStore{
		db:     db,
		prefix: append([]byte(nil), prefix...),
	}
}

func (d *DatabaseStore) key(slot common.Hash) []byte {
	k := make([]byte, 0, len(d.prefix)+common.HashLength)
	k = append(k, d.prefix...)
	return append(k, slot.Bytes()...)
}

// Load implements Store.
func (d *DatabaseStore) Load(_ context.Context, slot common.Hash) (common.Hash, error) {
	key := d.key(slot)
	ok, err := d.db.Has(key)
	if err != nil {
		return common.Hash{}, err
	}
	if !ok {
		return common.Hash{}, nil
	}
	data, err := d.db.Get(key)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(data), nil
}

// Commit implements Store using a single database batch.
func (d *DatabaseStore) Commit(_ context.Context, writes map[common.Hash]common.Hash) error {
	batch := d.db.NewBatch()
	for slot, word := range writes {
		if err := batch.Put(d.key(slot), word.Bytes()); err != nil {
			return err
		}
	}
	return batch.Write()
}
