package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_KnownPrompts verifies every prompt the services depend on loads
func TestGet_KnownPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
	}{
		{"parsing.json", "resume_extract"},
		{"analysis.json", "resume_check"},
		{"analysis.json", "jd_match"},
		{"analysis.json", "interview_questions"},
		{"analysis.json", "fit_score"},
		{"rendering.json", "table_from_raw_text"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

// TestGet_MissingKey tests error handling for an unknown prompt key
func TestGet_MissingKey(t *testing.T) {
	_, err := Get("parsing.json", "no_such_prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_prompt")
}

// TestGet_MissingFile tests error handling for an unknown prompt file
func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "resume_extract")
	assert.Error(t, err)
}

// TestFormat tests placeholder substitution
func TestFormat(t *testing.T) {
	template := "Compare {{.Resume}} against {{.JD}}. Resume again: {{.Resume}}"
	result := Format(template, map[string]string{
		"Resume": "RESUME_TEXT",
		"JD":     "JD_TEXT",
	})
	assert.Equal(t, "Compare RESUME_TEXT against JD_TEXT. Resume again: RESUME_TEXT", result)
}

// TestFormat_UnknownPlaceholderLeftIntact tests that unmatched placeholders survive
func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

// TestTemplatedPromptsCarryPlaceholders verifies the templated prompts
// actually reference the placeholders Format will fill
func TestTemplatedPromptsCarryPlaceholders(t *testing.T) {
	jdMatch := MustGet("analysis.json", "jd_match")
	assert.Contains(t, jdMatch, "{{.Resume}}")
	assert.Contains(t, jdMatch, "{{.JD}}")

	fitScore := MustGet("analysis.json", "fit_score")
	assert.Contains(t, fitScore, "{{.Resume}}")
	assert.Contains(t, fitScore, "{{.JD}}")

	tableFallback := MustGet("rendering.json", "table_from_raw_text")
	assert.Contains(t, tableFallback, "{{.RawText}}")
}
