package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/assetkeeper/internal/client/repositories/metadata"
)

// DefaultSlot is the storage key holding the snapshot.
const DefaultSlot = "auth-storage"

// Storage is a single persisted slot. Load reports found=false when the
// slot has never been written.
type Storage interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}

// Slot keeps the snapshot under one key of the metadata repository.
type Slot struct {
	repo metadata.Repository
	key  string
}

func NewSlot(repo metadata.Repository, key string) *Slot {
	if key == "" {
		key = DefaultSlot
	}
	return &Slot{repo: repo, key: key}
}

func (s *Slot) Load(ctx context.Context) ([]byte, bool, error) {
	v, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return nil, false, err
	}
	if v == nil {
		return nil, false, nil
	}
	return v, true, nil
}

func (s *Slot) Save(ctx context.Context, data []byte) error {
	return s.repo.Set(ctx, s.key, data)
}

// MemoryStorage is a process-local Storage.
type MemoryStorage struct {
	mu      sync.Mutex
	data    []byte
	found   bool
	saveErr error
	writes  int
}

// NewMemoryStorage returns storage preloaded with data; nil means empty.
func NewMemoryStorage(data []byte) *MemoryStorage {
	return &MemoryStorage{data: data, found: data != nil}
}

func (m *MemoryStorage) Load(context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...), m.found, nil
}

func (m *MemoryStorage) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.found = true
	m.writes++
	return nil
}

// FailWrites makes subsequent Save calls return err; nil restores writes.
func (m *MemoryStorage) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Writes returns how many successful saves happened.
func (m *MemoryStorage) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
