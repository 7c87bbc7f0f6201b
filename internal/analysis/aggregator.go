package analysis

import (
	"sort"

	"github.com/Veraticus/lightledger/internal/model"
)

// CategoryTotal is one row of the per-category spending breakdown.
type CategoryTotal struct {
	Category   model.Category
	Amount     float64
	Percentage float64
}

// Aggregate sums record amounts per category and computes each category's
// share of total spend. Categories with no spend are omitted. Rows are
// ordered by descending amount; ties keep the taxonomy's display order
// (stable sort over the input category order).
func Aggregate(records []model.Record, categories []model.Category) []CategoryTotal {
	var totalSpent float64
	byCategory := make(map[model.CategoryID]float64, len(categories))
	for _, rec := range records {
		byCategory[rec.CategoryID] += rec.Amount
		totalSpent += rec.Amount
	}

	totals := make([]CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		amount := byCategory[cat.ID]
		if amount == 0 {
			continue
		}
		var percentage float64
		if totalSpent > 0 {
			percentage = amount / totalSpent * 100
		}
		totals = append(totals, CategoryTotal{
			Category:   cat,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	return totals
}

// TotalSpent sums all record amounts.
func TotalSpent(records []model.Record) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Amount
	}
	return total
}
