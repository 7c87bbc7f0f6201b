// Package model defines the core domain types for the ledger.
package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record represents a single logged spending event. Records are immutable
// once created; the store discards them only on a full-state reset.
type Record struct {
	Date       time.Time
	ID         string
	Note       string
	CategoryID CategoryID
	Amount     float64
}

// NewRecord builds a record for the given spending event. An unknown
// category is coerced to the fallback, and an empty note defaults to the
// category's display name.
func NewRecord(amount float64, categoryID CategoryID, note string, date time.Time) Record {
	cat, ok := CategoryByID(categoryID)
	if !ok {
		cat = FallbackCategory()
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = cat.Name
	}

	return Record{
		ID:         uuid.NewString(),
		Amount:     amount,
		CategoryID: cat.ID,
		Note:       note,
		Date:       date,
	}
}

// Validate checks the invariants every admitted record must satisfy.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record ID is required")
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return fmt.Errorf("amount must be a finite number, got %v", r.Amount)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %.2f", r.Amount)
	}
	if _, ok := CategoryByID(r.CategoryID); !ok {
		return fmt.Errorf("unknown category: %s", r.CategoryID)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("record date is required")
	}
	return nil
}
