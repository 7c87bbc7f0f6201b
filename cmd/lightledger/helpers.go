package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/lightledger/internal/config"
	"github.com/Veraticus/lightledger/internal/ledger"
	"github.com/Veraticus/lightledger/internal/llm"
	"github.com/Veraticus/lightledger/internal/storage"
)

// openStore opens the snapshot database and hydrates the in-memory ledger.
// Callers must Close the returned store to flush the final snapshot.
func openStore(ctx context.Context) (*ledger.Store, error) {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	port, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", dbPath, err)
	}

	return ledger.New(ctx, port), nil
}

// newSuggester builds the semantic parser from config. Returns nil when no
// provider is configured; callers treat that as "assist unavailable".
func newSuggester() *llm.Suggester {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		return nil
	}

	timeout := 15 * time.Second
	if d := viper.GetDuration("llm.timeout"); d > 0 {
		timeout = d
	}

	client, err := llm.NewClient(llm.Config{
		Provider: provider,
		APIKey:   viper.GetString("llm.api_key"),
		Model:    viper.GetString("llm.model"),
		Timeout:  timeout,
	})
	if err != nil {
		slog.Warn("Semantic parsing unavailable", "error", err)
		return nil
	}

	return llm.NewSuggester(client, timeout)
}
