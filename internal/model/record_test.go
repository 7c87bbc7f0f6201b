package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Now()

	t.Run("fills ID and keeps fields", func(t *testing.T) {
		rec := NewRecord(35, CategoryFood, "午饭", now)
		require.NotEmpty(t, rec.ID)
		assert.Equal(t, 35.0, rec.Amount)
		assert.Equal(t, CategoryFood, rec.CategoryID)
		assert.Equal(t, "午饭", rec.Note)
		assert.Equal(t, now, rec.Date)
		assert.NoError(t, rec.Validate())
	})

	t.Run("empty note defaults to category name", func(t *testing.T) {
		rec := NewRecord(12, CategoryTransport, "  ", now)
		assert.Equal(t, "交通", rec.Note)
	})

	t.Run("unknown category coerced to fallback", func(t *testing.T) {
		rec := NewRecord(9.5, "no-such-category", "", now)
		assert.Equal(t, CategoryOther, rec.CategoryID)
		assert.Equal(t, "其他", rec.Note)
	})

	t.Run("distinct IDs across records", func(t *testing.T) {
		a := NewRecord(1, CategoryFood, "a", now)
		b := NewRecord(1, CategoryFood, "b", now)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestRecordValidate(t *testing.T) {
	valid := NewRecord(50, CategoryFood, "午饭", time.Now())

	tests := []struct {
		mutate  func(*Record)
		name    string
		wantErr bool
	}{
		{name: "valid record", mutate: func(*Record) {}, wantErr: false},
		{name: "missing ID", mutate: func(r *Record) { r.ID = "" }, wantErr: true},
		{name: "zero amount", mutate: func(r *Record) { r.Amount = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(r *Record) { r.Amount = -5 }, wantErr: true},
		{name: "NaN amount", mutate: func(r *Record) { r.Amount = math.NaN() }, wantErr: true},
		{name: "infinite amount", mutate: func(r *Record) { r.Amount = math.Inf(1) }, wantErr: true},
		{name: "unknown category", mutate: func(r *Record) { r.CategoryID = "bogus" }, wantErr: true},
		{name: "zero date", mutate: func(r *Record) { r.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)
			err := rec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
