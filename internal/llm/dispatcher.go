package llm

import (
	"context"
	"sync"

	"github.com/Veraticus/lightledger/internal/service"
)

// Dispatcher serializes in-flight parse requests for an entry form. Issuing
// a new request cancels the previous one and bumps a generation counter;
// a completion whose generation is stale is discarded instead of being
// applied to a form the user has since changed or left.
type Dispatcher struct {
	parser service.Parser
	cancel context.CancelFunc
	gen    uint64
	mu     sync.Mutex
}

// NewDispatcher wraps a parser.
func NewDispatcher(parser service.Parser) *Dispatcher {
	return &Dispatcher{parser: parser}
}

// Result is the outcome of a dispatched parse. Stale is true when the
// request was superseded or invalidated before it completed; in that case
// Suggestion and Err must be ignored.
type Result struct {
	Err        error
	Suggestion service.Suggestion
	Stale      bool
}

// Dispatch starts a parse and blocks until it finishes. It is safe to call
// from multiple goroutines; only the most recently dispatched request can
// deliver a non-stale result.
func (d *Dispatcher) Dispatch(ctx context.Context, input string) Result {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	suggestion, err := d.parser.Parse(ctx, input)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return Result{Stale: true}
	}
	return Result{Suggestion: suggestion, Err: err}
}

// Invalidate discards any in-flight request's eventual result, e.g. when
// the user clears the form or navigates away.
func (d *Dispatcher) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.gen++
}
