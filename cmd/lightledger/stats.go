package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/analysis"
	"github.com/Veraticus/lightledger/internal/cli"
	"github.com/Veraticus/lightledger/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show budget status and the per-category breakdown",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	budget := store.Budget()
	spent := store.TotalSpent()
	projection := analysis.Project(budget.Total, spent, time.Now())

	fmt.Printf("Budget:    %s\n", cli.Yuan(budget.Total))
	fmt.Printf("Spent:     %s (%.1f%%)\n", cli.Yuan(spent), projection.PercentSpent)
	fmt.Printf("Remaining: %s\n", cli.Yuan(projection.Remaining))
	fmt.Printf("Daily:     %s over %d days\n", cli.Yuan(projection.DailyLimit), projection.DaysLeft)
	fmt.Printf("Status:    %s\n", cli.StatusLabel(projection.Status))

	totals := analysis.Aggregate(store.Records(), model.Categories())
	if len(totals) == 0 {
		return nil
	}

	fmt.Println()
	for _, row := range totals {
		bar := cli.Bar(row.Percentage, 24, row.Category.Color)
		fmt.Printf("%-4s %s %5.1f%%  %s\n", row.Category.Name, bar, row.Percentage, cli.Yuan(row.Amount))
	}
	return nil
}
