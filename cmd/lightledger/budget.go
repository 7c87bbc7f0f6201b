package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/cli"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or change the monthly budget",
		RunE:  runBudgetShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [amount]",
		Short: "Set the monthly budget total",
		Args:  cobra.ExactArgs(1),
		RunE:  runBudgetSet,
	})

	return cmd
}

func runBudgetShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	fmt.Printf("Monthly budget: %s\n", cli.Yuan(store.Budget().Total))
	return nil
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		slog.Warn("Budget input not a number, using 0", "input", args[0])
		value = 0
	}

	store.SetBudgetTotal(ctx, value)
	fmt.Printf("Monthly budget set to %s\n", cli.Yuan(store.Budget().Total))
	return nil
}
