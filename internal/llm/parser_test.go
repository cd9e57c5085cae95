package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			input:  `{"a": 1}`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "markdown fenced",
			input:  "```json\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "surrounded by prose",
			input:  `Here you go: {"a": {"b": 2}} hope that helps!`,
			want:   `{"a": {"b": 2}}`,
			wantOK: true,
		},
		{
			name:   "no object",
			input:  "sorry, I cannot help with that",
			wantOK: false,
		},
		{
			name:   "reversed braces",
			input:  "} nothing {",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseCategoryMap(t *testing.T) {
	tests := []struct {
		want  map[string]string
		name  string
		input string
	}{
		{
			name:  "clean reply",
			input: `{"t1": "Food & Dining", "t2": "Essentials"}`,
			want:  map[string]string{"t1": "Food & Dining", "t2": "Essentials"},
		},
		{
			name:  "fenced reply",
			input: "```json\n{\"t1\": \"Transportation\"}\n```",
			want:  map[string]string{"t1": "Transportation"},
		},
		{
			name:  "non-string values dropped",
			input: `{"t1": "Essentials", "t2": 5, "t3": ["a"]}`,
			want:  map[string]string{"t1": "Essentials"},
		},
		{
			name:  "malformed json degrades to empty",
			input: `{"t1": "Essentials",}`,
			want:  map[string]string{},
		},
		{
			name:  "no object degrades to empty",
			input: "I could not categorize these.",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCategoryMap(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInsights(t *testing.T) {
	input := `Here are your insights:
{"keyInsights": ["Spending is up"], "alerts": [], "suggestions": ["Cook at home"]}`

	got, err := ParseInsights(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"Spending is up"}, got.KeyInsights)
	assert.Empty(t, got.Alerts)
	assert.Equal(t, []string{"Cook at home"}, got.Suggestions)
}

func TestParseInsightsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no object", input: "no JSON here"},
		{name: "malformed", input: `{"keyInsights": [}`},
		{name: "missing field", input: `{"keyInsights": [], "alerts": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInsights(tt.input)
			assert.Error(t, err)
		})
	}
}
