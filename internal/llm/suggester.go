package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/lightledger/internal/common"
	"github.com/Veraticus/lightledger/internal/model"
	"github.com/Veraticus/lightledger/internal/service"
)

// defaultParseTimeout bounds a single extraction call. The upstream
// contract has no timeout of its own; expiry degrades to "no suggestion".
const defaultParseTimeout = 15 * time.Second

// Suggester adapts a provider Client to the service.Parser contract. It
// imposes a timeout, maps the returned display name onto the taxonomy, and
// folds every failure into ErrNoSuggestion. Failed parses are never retried
// here; re-triggering is the user's call.
type Suggester struct {
	client  Client
	timeout time.Duration
}

// NewSuggester wraps a client. A non-positive timeout gets the default.
func NewSuggester(client Client, timeout time.Duration) *Suggester {
	if timeout <= 0 {
		timeout = defaultParseTimeout
	}
	return &Suggester{
		client:  client,
		timeout: timeout,
	}
}

// Parse implements service.Parser.
func (s *Suggester) Parse(ctx context.Context, input string) (service.Suggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return service.Suggestion{}, fmt.Errorf("%w: empty input", common.ErrNoSuggestion)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Parse(ctx, input)
	if err != nil {
		slog.Warn("semantic parse failed", "error", err)
		return service.Suggestion{}, fmt.Errorf("%w: %v", common.ErrNoSuggestion, err)
	}

	cat := model.CategoryByName(resp.Category)
	slog.Debug("semantic parse succeeded",
		"amount", resp.Amount,
		"category", cat.ID,
		"note", resp.Note)

	return service.Suggestion{
		Amount:   resp.Amount,
		Category: cat.ID,
		Note:     resp.Note,
	}, nil
}
