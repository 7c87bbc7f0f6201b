package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/cli"
	"github.com/Veraticus/lightledger/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses, newest first",
		RunE:  runList,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum records to show (0 for all)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	records := store.Records()
	if len(records) == 0 {
		fmt.Println("No expenses recorded yet.")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tNOTE\tAMOUNT")
	for _, r := range records {
		category, _ := model.CategoryByID(r.CategoryID)
		date := "-"
		if !r.Date.IsZero() {
			date = r.Date.Format("01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", date, category.Name, r.Note, cli.Yuan(r.Amount))
	}
	return w.Flush()
}
