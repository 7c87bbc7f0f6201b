// Package testutil provides test doubles for the ledger's ports.
package testutil

import (
	"context"
	"sync"

	"github.com/Veraticus/lightledger/internal/model"
	"github.com/Veraticus/lightledger/internal/service"
)

// MemorySnapshotStore is an in-memory service.SnapshotStore for tests. It
// records every save so tests can assert on persistence behavior, and can
// be primed to fail.
type MemorySnapshotStore struct {
	LoadErr   error
	SaveErr   error
	snapshot  service.Snapshot
	SaveCalls int
	hasData   bool
	Closed    bool
	mu        sync.Mutex
}

// NewMemorySnapshotStore returns an empty store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

// Prime seeds the store with a snapshot, as if a prior run had saved it.
func (m *MemorySnapshotStore) Prime(snapshot service.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = cloneSnapshot(snapshot)
	m.hasData = true
}

// Load implements service.SnapshotStore.
func (m *MemorySnapshotStore) Load(_ context.Context) (service.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return service.Snapshot{}, m.LoadErr
	}
	if !m.hasData {
		return service.Snapshot{
			Records: []model.Record{},
			Budget:  model.Budget{Total: model.DefaultBudgetTotal},
		}, nil
	}
	return cloneSnapshot(m.snapshot), nil
}

// Save implements service.SnapshotStore.
func (m *MemorySnapshotStore) Save(_ context.Context, snapshot service.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.snapshot = cloneSnapshot(snapshot)
	m.hasData = true
	return nil
}

// Close implements service.SnapshotStore.
func (m *MemorySnapshotStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Saved returns the most recently saved snapshot.
func (m *MemorySnapshotStore) Saved() service.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSnapshot(m.snapshot)
}

func cloneSnapshot(s service.Snapshot) service.Snapshot {
	records := make([]model.Record, len(s.Records))
	copy(records, s.Records)
	return service.Snapshot{Records: records, Budget: s.Budget}
}
