package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	// 2026-08-15 in a 31-day month: 17 days left including today.
	today := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		total            float64
		spent            float64
		wantRemaining    float64
		wantDailyLimit   float64
		wantPercentSpent float64
		wantStatus       Status
	}{
		{
			name:             "normal spending",
			total:            6000,
			spent:            50,
			wantRemaining:    5950,
			wantDailyLimit:   5950.0 / 17,
			wantPercentSpent: 50.0 / 6000 * 100,
			wantStatus:       StatusNormal,
		},
		{
			name:             "low budget",
			total:            1000,
			spent:            950,
			wantRemaining:    50,
			wantDailyLimit:   50.0 / 17,
			wantPercentSpent: 95,
			wantStatus:       StatusLow,
		},
		{
			name:             "over budget",
			total:            1000,
			spent:            1100,
			wantRemaining:    -100,
			wantDailyLimit:   0,
			wantPercentSpent: 100,
			wantStatus:       StatusOver,
		},
		{
			name:             "nothing spent",
			total:            6000,
			spent:            0,
			wantRemaining:    6000,
			wantDailyLimit:   6000.0 / 17,
			wantPercentSpent: 0,
			wantStatus:       StatusNormal,
		},
		{
			name:             "zero budget with no spend",
			total:            0,
			spent:            0,
			wantRemaining:    0,
			wantDailyLimit:   0,
			wantPercentSpent: 0,
			wantStatus:       StatusLow,
		},
		{
			name:             "zero budget with spend",
			total:            0,
			spent:            10,
			wantRemaining:    -10,
			wantDailyLimit:   0,
			wantPercentSpent: 0,
			wantStatus:       StatusOver,
		},
		{
			name:             "exactly spent",
			total:            500,
			spent:            500,
			wantRemaining:    0,
			wantDailyLimit:   0,
			wantPercentSpent: 100,
			wantStatus:       StatusLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.total, tt.spent, today)
			assert.InDelta(t, tt.wantRemaining, p.Remaining, 1e-9)
			assert.InDelta(t, tt.wantDailyLimit, p.DailyLimit, 1e-9)
			assert.InDelta(t, tt.wantPercentSpent, p.PercentSpent, 1e-9)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, 17, p.DaysLeft)
			assert.GreaterOrEqual(t, p.DailyLimit, 0.0)
		})
	}
}

func TestProjectDaysLeft(t *testing.T) {
	tests := []struct {
		today        time.Time
		name         string
		wantDaysLeft int
	}{
		{name: "first of month", today: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), wantDaysLeft: 31},
		{name: "last of month", today: time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC), wantDaysLeft: 1},
		{name: "february non-leap", today: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), wantDaysLeft: 28},
		{name: "february leap", today: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC), wantDaysLeft: 29},
		{name: "thirty day month", today: time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC), wantDaysLeft: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(1000, 0, tt.today)
			assert.Equal(t, tt.wantDaysLeft, p.DaysLeft)
			assert.InDelta(t, 1000.0/float64(tt.wantDaysLeft), p.DailyLimit, 1e-9)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "normal", StatusNormal.String())
	assert.Equal(t, "low", StatusLow.String())
	assert.Equal(t, "over", StatusOver.String())
	assert.Equal(t, "unknown", Status(99).String())
}
