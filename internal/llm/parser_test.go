package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lightledger/internal/common"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ParseResponse
		wantErr bool
	}{
		{
			name:    "plain JSON",
			content: `{"amount": 35, "category": "餐饮", "note": "午饭"}`,
			want:    ParseResponse{Amount: 35, Category: "餐饮", Note: "午饭"},
		},
		{
			name: "markdown fenced JSON",
			content: "```json\n" +
				`{"amount": 50, "category": "交通", "note": "打车"}` +
				"\n```",
			want: ParseResponse{Amount: 50, Category: "交通", Note: "打车"},
		},
		{
			name:    "decimal amount",
			content: `{"amount": 12.5, "category": "数码", "note": "数据线"}`,
			want:    ParseResponse{Amount: 12.5, Category: "数码", Note: "数据线"},
		},
		{
			name:    "not JSON",
			content: "sorry, I could not parse that",
			wantErr: true,
		},
		{
			name:    "missing amount",
			content: `{"category": "餐饮", "note": "午饭"}`,
			wantErr: true,
		},
		{
			name:    "missing category",
			content: `{"amount": 35, "note": "午饭"}`,
			wantErr: true,
		},
		{
			name:    "missing note",
			content: `{"amount": 35, "category": "餐饮"}`,
			wantErr: true,
		},
		{
			name:    "zero amount",
			content: `{"amount": 0, "category": "餐饮", "note": "午饭"}`,
			wantErr: true,
		},
		{
			name:    "negative amount",
			content: `{"amount": -20, "category": "餐饮", "note": "退款"}`,
			wantErr: true,
		},
		{
			name:    "blank fields",
			content: `{"amount": 10, "category": " ", "note": " "}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExtraction(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtractionPartialIsNeverReturned(t *testing.T) {
	got, err := parseExtraction(`{"amount": 35}`)
	require.ErrorIs(t, err, common.ErrPartialResponse)
	assert.Zero(t, got)
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper(`{"a":1}`))
}
