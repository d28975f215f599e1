package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"name": "Jane Doe"}`,
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  \n```json\n{\"skills\": []}\n```\n  ",
			expected: `{"skills": []}`,
		},
		{
			name:     "non-json text untouched",
			input:    "not json at all",
			expected: "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
