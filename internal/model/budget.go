package model

// DefaultBudgetTotal seeds the monthly budget on first run.
const DefaultBudgetTotal = 6000

// Budget holds the user-configured total intended spend for the current
// month. Spent and remaining amounts are never stored; they are recomputed
// from the record list on every read.
type Budget struct {
	Total float64
}
