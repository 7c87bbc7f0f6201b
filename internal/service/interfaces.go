// Package service defines the interfaces between the ledger core and its
// collaborators.
package service

import (
	"context"

	"github.com/Veraticus/lightledger/internal/model"
)

// Snapshot is the full persisted state: the record list (most-recent-first)
// and the budget. It is written whole on every mutation and read once at
// startup.
type Snapshot struct {
	Records []model.Record
	Budget  model.Budget
}

// SnapshotStore defines the contract for the persistence collaborator. A
// store holds exactly one snapshot and replaces it atomically on save.
type SnapshotStore interface {
	// Load returns the stored snapshot. An absent or corrupt snapshot
	// yields an empty record list and the default budget, not an error;
	// errors indicate the storage itself is unusable.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot Snapshot) error

	Close() error
}

// Suggestion is a fully-resolved entry suggestion produced from free text.
// Category has already been mapped onto the fixed taxonomy.
type Suggestion struct {
	Note     string
	Category model.CategoryID
	Amount   float64
}

// Parser defines the contract for the semantic parsing collaborator. A
// failed parse returns an error and never a partial suggestion.
type Parser interface {
	Parse(ctx context.Context, input string) (Suggestion, error)
}
