package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/llm"
	"github.com/Veraticus/lightledger/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive ledger",
		Long: `Open the full-screen interactive ledger. Starts on the lock screen;
press enter to unlock. From home, 'a' records an expense, 's' shows the
category breakdown, and 'L' locks again.`,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	var dispatcher *llm.Dispatcher
	if suggester := newSuggester(); suggester != nil {
		dispatcher = llm.NewDispatcher(suggester)
	}

	return tui.Run(ctx, tui.Config{
		Store:      store,
		Dispatcher: dispatcher,
	})
}
