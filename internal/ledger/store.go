// Package ledger holds the authoritative in-memory state: the record list
// and the budget. It is the only place mutations happen, and every mutation
// writes the full snapshot back through the injected persistence port.
package ledger

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Veraticus/lightledger/internal/model"
	"github.com/Veraticus/lightledger/internal/service"
)

// Store is the single source of truth for records and the budget. It is
// constructed once at process start and closed (with a final save) at
// process end. The workload is single-writer; the mutex is hygiene, not a
// required discipline.
type Store struct {
	port    service.SnapshotStore
	now     func() time.Time
	records []model.Record
	budget  model.Budget
	mu      sync.RWMutex
}

// New hydrates a store from the persistence port. Any load failure degrades
// to empty records and the default budget; hydration never fails.
func New(ctx context.Context, port service.SnapshotStore) *Store {
	s := &Store{
		port: port,
		now:  time.Now,
	}

	snap, err := port.Load(ctx)
	if err != nil {
		slog.Warn("failed to load snapshot, starting with defaults", "error", err)
		snap = service.Snapshot{
			Records: []model.Record{},
			Budget:  model.Budget{Total: model.DefaultBudgetTotal},
		}
	}

	s.records = snap.Records
	s.budget = snap.Budget
	return s
}

// AddRecord admits one spending event. Non-finite or non-positive amounts
// are refused: the store stays untouched and ok is false. The new record is
// prepended so the list stays most-recent-first, then the snapshot is
// persisted.
func (s *Store) AddRecord(ctx context.Context, amount float64, categoryID model.CategoryID, note string) (model.Record, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		slog.Debug("refusing record with invalid amount", "amount", amount)
		return model.Record{}, false
	}

	s.mu.Lock()
	rec := model.NewRecord(amount, categoryID, note, s.now())
	s.records = append([]model.Record{rec}, s.records...)
	s.mu.Unlock()

	slog.Info("added record",
		"id", rec.ID,
		"amount", rec.Amount,
		"category", rec.CategoryID,
		"note", rec.Note)

	s.persist(ctx)
	return rec, true
}

// ImportRecords bulk-admits records through the same validation gate as
// AddRecord, newest first, with a single persist at the end. It returns the
// number of records admitted.
func (s *Store) ImportRecords(ctx context.Context, recs []model.Record) int {
	admitted := 0

	s.mu.Lock()
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			slog.Warn("skipping record on import", "id", rec.ID, "error", err)
			continue
		}
		s.records = append([]model.Record{rec}, s.records...)
		admitted++
	}
	s.mu.Unlock()

	if admitted == 0 {
		return 0
	}

	slog.Info("imported records", "admitted", admitted, "skipped", len(recs)-admitted)
	s.persist(ctx)
	return admitted
}

// SetBudgetTotal updates the budget. Non-finite or negative values are
// coerced to zero rather than refused.
func (s *Store) SetBudgetTotal(ctx context.Context, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		value = 0
	}

	s.mu.Lock()
	s.budget.Total = value
	s.mu.Unlock()

	slog.Info("set budget total", "total", value)
	s.persist(ctx)
}

// Records returns the record list, most recent first. Callers receive a
// copy; records themselves are immutable.
func (s *Store) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Budget returns the current budget.
func (s *Store) Budget() model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

// TotalSpent sums all record amounts.
func (s *Store) TotalSpent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, rec := range s.records {
		total += rec.Amount
	}
	return total
}

// Close performs a final save and releases the persistence port.
func (s *Store) Close(ctx context.Context) error {
	s.persist(ctx)
	return s.port.Close()
}

// persist writes the full snapshot. A failed write is logged and otherwise
// swallowed: the in-memory state remains authoritative and nothing here is
// fatal to the process.
func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	snap := service.Snapshot{
		Records: make([]model.Record, len(s.records)),
		Budget:  s.budget,
	}
	copy(snap.Records, s.records)
	s.mu.RUnlock()

	if err := s.port.Save(ctx, snap); err != nil {
		slog.Warn("failed to persist snapshot", "error", err, "records", len(snap.Records))
	}
}
