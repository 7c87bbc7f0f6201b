package llm

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lightledger/internal/model"
)

// buildPrompt produces the extraction prompt sent to every provider. The
// category list is generated from the taxonomy so the prompt and the code
// can never disagree about valid names.
func buildPrompt(input string) string {
	names := make([]string, 0, 8)
	for _, cat := range model.Categories() {
		names = append(names, cat.Name)
	}

	return fmt.Sprintf(`Parse the following bookkeeping input and extract the amount, category, and a short note.
Input: %q
Rules:
1. "amount": the spent amount as a number.
2. "category": exactly one of [%s].
3. "note": what the user actually spent on, in their own words.

Example: "午饭35" -> {"amount": 35, "category": "餐饮", "note": "午饭"}

Respond with a single JSON object containing the keys "amount", "category", and "note".`,
		input, strings.Join(names, ", "))
}

// cleanMarkdownWrapper strips a ```json fenced block if the model wrapped
// its response in one.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
