package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lightledger/internal/cli"
	"github.com/Veraticus/lightledger/internal/common"
	"github.com/Veraticus/lightledger/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [amount] [note...]",
		Short: "Record an expense",
		Long: `Record an expense against this month's budget.

With an amount, the record is added directly:
  lightledger add 35 午饭 --category food

With --parse, free text is turned into an amount, category, and note by the
configured language model. The suggestion is shown before being recorded:
  lightledger add --parse "昨天打车去机场花了58块"`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("category", "c", string(model.CategoryFood), "category id (food, transport, shopping, house, culture, travel, tech, other)")
	cmd.Flags().StringP("parse", "p", "", "describe the expense in free text instead of giving an amount")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	parseText, _ := cmd.Flags().GetString("parse")
	if parseText != "" {
		return addParsed(cmd, parseText)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	if len(args) == 0 {
		return fmt.Errorf("amount required (or use --parse)")
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}

	categoryFlag, _ := cmd.Flags().GetString("category")
	categoryID := model.CategoryID(categoryFlag)
	if _, ok := model.CategoryByID(categoryID); !ok {
		return fmt.Errorf("unknown category %q", categoryFlag)
	}

	note := strings.Join(args[1:], " ")

	record, ok := store.AddRecord(cmd.Context(), amount, categoryID, note)
	if !ok {
		return fmt.Errorf("amount must be a positive number")
	}

	category, _ := model.CategoryByID(record.CategoryID)
	fmt.Printf("Recorded %s %s %s\n", cli.Yuan(record.Amount), category.Name, record.Note)
	return nil
}

func addParsed(cmd *cobra.Command, text string) error {
	ctx := cmd.Context()

	suggester := newSuggester()
	if suggester == nil {
		return common.NewUserError(
			"semantic parsing requires llm.provider and llm.api_key in config",
			common.ErrMissingConfig,
		)
	}

	suggestion, err := suggester.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("could not understand %q: %w", text, err)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	record, ok := store.AddRecord(ctx, suggestion.Amount, suggestion.Category, suggestion.Note)
	if !ok {
		return fmt.Errorf("parsed amount %v is not a positive number", suggestion.Amount)
	}

	category, _ := model.CategoryByID(record.CategoryID)
	fmt.Printf("Recorded %s %s %s\n", cli.Yuan(record.Amount), category.Name, record.Note)
	return nil
}
