package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/ofx"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.ofx]",
		Short: "Import expenses from an OFX/QFX bank export",
		Long: `Import debit transactions from an OFX or QFX file downloaded from a bank.

Credits and deposits are skipped. Imported records land in the "other"
category; recategorize them afterwards if needed.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportOFX,
	}
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = file.Close() }()

	records, err := ofx.NewParser().ParseFile(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	admitted := store.ImportRecords(ctx, records)
	skipped := len(records) - admitted
	fmt.Printf("Imported %d record(s)", admitted)
	if skipped > 0 {
		fmt.Printf(", skipped %d invalid", skipped)
	}
	fmt.Println()
	return nil
}
