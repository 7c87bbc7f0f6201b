package storage

import (
	"context"
	"fmt"
	"math"

	"github.com/Veraticus/lightledger/internal/service"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return nil
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

// validateSnapshot rejects snapshots that would poison the stored blob.
// Record-level invariants are the store's concern before save; here we only
// guard against values JSON cannot represent.
func validateSnapshot(snapshot service.Snapshot) error {
	if math.IsNaN(snapshot.Budget.Total) || math.IsInf(snapshot.Budget.Total, 0) {
		return fmt.Errorf("budget total must be a finite number, got %v", snapshot.Budget.Total)
	}
	for i, rec := range snapshot.Records {
		if rec.ID == "" {
			return fmt.Errorf("record %d has no ID", i)
		}
		if math.IsNaN(rec.Amount) || math.IsInf(rec.Amount, 0) {
			return fmt.Errorf("record %s has non-finite amount", rec.ID)
		}
	}
	return nil
}
