package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Veraticus/lightledger/internal/common"
	"github.com/Veraticus/lightledger/internal/model"
	"github.com/Veraticus/lightledger/internal/service"
)

// storedSnapshot is the persisted JSON shape: the record list plus the bare
// budget total. Record dates travel as RFC 3339 text so they round-trip.
type storedSnapshot struct {
	Records []storedRecord `json:"records"`
	Budget  float64        `json:"budget"`
}

type storedRecord struct {
	ID         string  `json:"id"`
	Amount     float64 `json:"amount"`
	CategoryID string  `json:"categoryId"`
	Note       string  `json:"note"`
	Date       string  `json:"date"`
}

// Load returns the stored snapshot. An absent or corrupt blob degrades to an
// empty record list with the default budget; only an unusable database
// surfaces as an error.
func (s *SQLiteStore) Load(ctx context.Context) (service.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return service.Snapshot{}, err
	}

	snapshot, err := s.readSnapshot(ctx)
	if err != nil {
		if !common.IsRecoverable(err) {
			return service.Snapshot{}, err
		}
		if errors.Is(err, common.ErrNotFound) {
			slog.Debug("no stored snapshot, starting fresh")
		} else {
			slog.Warn("stored snapshot is corrupt, falling back to defaults", "error", err)
		}
		return defaultSnapshot(), nil
	}

	slog.Debug("loaded snapshot", "records", len(snapshot.Records), "budget", snapshot.Budget.Total)
	return snapshot, nil
}

// readSnapshot fetches and decodes the stored blob. An absent row is
// common.ErrNotFound and an undecodable payload is common.ErrSnapshotCorrupt;
// both are recoverable and degrade to defaults in Load.
func (s *SQLiteStore) readSnapshot(ctx context.Context) (service.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshot WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return service.Snapshot{}, common.ErrNotFound
	}
	if err != nil {
		return service.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	return decodeSnapshot(payload)
}

// decodeSnapshot rebuilds a snapshot from its stored JSON payload. Records
// that no longer satisfy the admission invariants are dropped individually;
// only a payload that fails to decode at all is reported as corrupt.
func decodeSnapshot(payload string) (service.Snapshot, error) {
	var stored storedSnapshot
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return service.Snapshot{}, fmt.Errorf("%w: %v", common.ErrSnapshotCorrupt, err)
	}

	records := make([]model.Record, 0, len(stored.Records))
	for _, sr := range stored.Records {
		rec, ok := restoreRecord(sr)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	budget := stored.Budget
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		budget = model.DefaultBudgetTotal
	}

	return service.Snapshot{
		Records: records,
		Budget:  model.Budget{Total: budget},
	}, nil
}

// Save replaces the stored snapshot inside a transaction.
func (s *SQLiteStore) Save(ctx context.Context, snapshot service.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	stored := storedSnapshot{
		Records: make([]storedRecord, 0, len(snapshot.Records)),
		Budget:  snapshot.Budget.Total,
	}
	for _, rec := range snapshot.Records {
		stored.Records = append(stored.Records, storedRecord{
			ID:         rec.ID,
			Amount:     rec.Amount,
			CategoryID: string(rec.CategoryID),
			Note:       rec.Note,
			Date:       rec.Date.Format(time.RFC3339Nano),
		})
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		string(payload))
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Debug("saved snapshot", "records", len(snapshot.Records), "bytes", len(payload))
	return nil
}

// restoreRecord rebuilds a model record from its stored form. Records that
// no longer satisfy the admission invariants are dropped; a date that fails
// to parse keeps the record with a zero timestamp rather than failing the
// whole load.
func restoreRecord(sr storedRecord) (model.Record, bool) {
	if sr.ID == "" {
		slog.Warn("dropping stored record without ID")
		return model.Record{}, false
	}
	if math.IsNaN(sr.Amount) || math.IsInf(sr.Amount, 0) || sr.Amount <= 0 {
		slog.Warn("dropping stored record with invalid amount", "id", sr.ID, "amount", sr.Amount)
		return model.Record{}, false
	}

	cat, ok := model.CategoryByID(model.CategoryID(sr.CategoryID))
	if !ok {
		cat = model.FallbackCategory()
	}

	var date time.Time
	if sr.Date != "" {
		parsed, err := time.Parse(time.RFC3339Nano, sr.Date)
		if err != nil {
			slog.Warn("stored record has unparseable date", "id", sr.ID, "date", sr.Date)
		} else {
			date = parsed
		}
	}

	note := sr.Note
	if note == "" {
		note = cat.Name
	}

	return model.Record{
		ID:         sr.ID,
		Amount:     sr.Amount,
		CategoryID: cat.ID,
		Note:       note,
		Date:       date,
	}, true
}

func defaultSnapshot() service.Snapshot {
	return service.Snapshot{
		Records: []model.Record{},
		Budget:  model.Budget{Total: model.DefaultBudgetTotal},
	}
}
