package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/lightledger/internal/common"
)

// parseExtraction decodes the model's JSON output. A response missing any
// required field, or carrying a non-positive amount, is an error: results
// are applied whole or not at all.
func parseExtraction(content string) (ParseResponse, error) {
	content = cleanMarkdownWrapper(content)

	var jsonResp struct {
		Category *string  `json:"category"`
		Note     *string  `json:"note"`
		Amount   *float64 `json:"amount"`
	}
	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return ParseResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Amount == nil || jsonResp.Category == nil || jsonResp.Note == nil {
		return ParseResponse{}, fmt.Errorf("%w: amount, category, and note are all required", common.ErrPartialResponse)
	}

	amount := *jsonResp.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ParseResponse{}, fmt.Errorf("%w: amount %v is not a positive number", common.ErrPartialResponse, amount)
	}

	category := strings.TrimSpace(*jsonResp.Category)
	note := strings.TrimSpace(*jsonResp.Note)
	if category == "" || note == "" {
		return ParseResponse{}, fmt.Errorf("%w: category and note must be non-empty", common.ErrPartialResponse)
	}

	return ParseResponse{
		Amount:   amount,
		Category: category,
		Note:     note,
	}, nil
}
