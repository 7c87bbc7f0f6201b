// Package analysis holds the pure data transformations behind the budget
// and stats views: the remaining-budget projection and the per-category
// aggregation. Both recompute from scratch on every call; at personal-use
// record counts there is nothing worth caching.
package analysis

import "time"

// Status classifies the state of the remaining budget.
type Status int

const (
	// StatusNormal means spending is comfortably within budget.
	StatusNormal Status = iota
	// StatusLow means less than 20% of the budget remains.
	StatusLow
	// StatusOver means spending has exceeded the budget.
	StatusOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusLow:
		return "low"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Projection is the remaining-budget view for the rest of the calendar
// month. DailyLimit carries full precision; rounding for display is the
// caller's concern.
type Projection struct {
	Remaining    float64
	DailyLimit   float64
	PercentSpent float64
	DaysLeft     int
	Status       Status
}

// Project computes the remaining budget, the suggested even spend rate for
// the days left in today's month (today inclusive), and the over/under
// status. PercentSpent is clamped to [0, 100] so it can drive a progress
// bar directly; Remaining and Status still reflect overspend.
func Project(total, spent float64, today time.Time) Projection {
	remaining := total - spent
	daysLeft := daysInMonth(today) - today.Day() + 1

	var dailyLimit float64
	if remaining > 0 {
		dailyLimit = remaining / float64(daysLeft)
	}

	var percentSpent float64
	if total > 0 {
		percentSpent = spent / total * 100
	}
	if percentSpent > 100 {
		percentSpent = 100
	}
	if percentSpent < 0 {
		percentSpent = 0
	}

	return Projection{
		Remaining:    remaining,
		DailyLimit:   dailyLimit,
		PercentSpent: percentSpent,
		DaysLeft:     daysLeft,
		Status:       status(total, remaining),
	}
}

func status(total, remaining float64) Status {
	if remaining < 0 {
		return StatusOver
	}
	if total == 0 {
		// Remaining percentage is undefined; a zero budget with nothing
		// overspent still warrants a warning.
		return StatusLow
	}
	if remaining/total*100 < 20 {
		return StatusLow
	}
	return StatusNormal
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
