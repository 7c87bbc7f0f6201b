package tui

import "github.com/Veraticus/lightledger/internal/llm"

// parseResultMsg delivers the outcome of a dispatched semantic parse.
type parseResultMsg struct {
	result llm.Result
}
