package rendering

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmatsumo/resume-screener/internal/candidate"
	"github.com/jmatsumo/resume-screener/internal/llm"
)

// stubClient is an llm.Client returning a canned response
type stubClient struct {
	output string
	err    error
	prompt string
}

func (c *stubClient) Complete(_ context.Context, prompt string, _ ...llm.Attachment) (string, error) {
	c.prompt = prompt
	return c.output, c.err
}

func (c *stubClient) Close() error { return nil }

// TestBuildTable_FixedRowOrder tests that all seven categories render in
// fixed order regardless of input key order
func TestBuildTable_FixedRowOrder(t *testing.T) {
	rec, err := candidate.Decode(`{
		"projects": [],
		"phone": "555-0100",
		"name": "Jane Doe",
		"email": "jane@example.com"
	}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "| Category | Details |", lines[0])
	assert.Equal(t, "|---|---|", lines[1])
	assert.Equal(t, "| **Name** | Jane Doe |", lines[2])
	assert.Equal(t, "| **Email** | jane@example.com |", lines[3])
	assert.Equal(t, "| **Phone** | 555-0100 |", lines[4])
	assert.Equal(t, "| **Education** | N/A |", lines[5])
	assert.Equal(t, "| **Skills** | N/A |", lines[6])
	assert.Equal(t, "| **Experience** | N/A |", lines[7])
	assert.Equal(t, "| **Projects** | N/A |", lines[8])
}

// TestBuildTable_UnrecognizedKeysDropped tests that extra keys produce no rows
func TestBuildTable_UnrecognizedKeysDropped(t *testing.T) {
	rec := candidate.Record{"name": "Jane Doe", "hobbies": []any{"chess"}}
	table := BuildTable(rec)
	assert.NotContains(t, table, "hobbies")
	assert.NotContains(t, table, "chess")
}

// TestBuildTable_Education tests the comma-joined bolded-degree bullets
func TestBuildTable_Education(t *testing.T) {
	rec, err := candidate.Decode(`{"education": [
		{"degree": "BSc Computer Science", "institution": "State U", "years": "2015-2019", "location": "Springfield"},
		{"degree": "MSc", "institution": "Tech U"}
	]}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	assert.Contains(t, table, "- **BSc Computer Science**, State U, (2015-2019), Springfield<br>- **MSc**, Tech U")
}

// TestBuildTable_SkillsMap tests the categorized skills form with
// alphabetical category order
func TestBuildTable_SkillsMap(t *testing.T) {
	rec, err := candidate.Decode(`{"skills": {
		"Tools": ["Docker"],
		"Languages": ["Go", "Rust"]
	}}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	assert.Contains(t, table, "**Languages:** Go, Rust<br>**Tools:** Docker")
}

// TestBuildTable_SkillsList tests the flat skills form
func TestBuildTable_SkillsList(t *testing.T) {
	rec, err := candidate.Decode(`{"skills": ["Go", "Rust"]}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	assert.Contains(t, table, "- Go<br>- Rust")
}

// TestBuildTable_Experience tests header bullets with responsibility
// sub-bullets, and that incomplete entries are dropped
func TestBuildTable_Experience(t *testing.T) {
	rec, err := candidate.Decode(`{"experience": [
		{"title": "Engineer", "company": "Acme", "dates": "2019-2023", "responsibilities": ["Built services", "Led reviews"]},
		{"title": "Intern", "company": "Beta"}
	]}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	assert.Contains(t, table, "- **Engineer**, Acme (2019-2023):<br>  - Built services<br>  - Led reviews")
	assert.NotContains(t, table, "Intern")
}

// TestBuildTable_Projects tests project headers with technologies and the
// unnamed-project default
func TestBuildTable_Projects(t *testing.T) {
	rec, err := candidate.Decode(`{"projects": [
		{"name": "Pipeline", "technologies": ["Go", "Kafka"], "outcomes": ["Cut latency"]},
		{"outcomes": ["Shipped"]}
	]}`)
	require.NoError(t, err)

	table := BuildTable(rec)
	assert.Contains(t, table, "- **Pipeline** (Technologies: Go, Kafka):<br>  - Cut latency")
	assert.Contains(t, table, "- **Unnamed Project**:<br>  - Shipped")
}

// TestBuildTable_NACollapse tests blank and n/a scalar collapsing
func TestBuildTable_NACollapse(t *testing.T) {
	rec := candidate.Record{"name": "  ", "email": "n/a", "phone": "N/A"}
	table := BuildTable(rec)
	assert.Contains(t, table, "| **Name** | N/A |")
	assert.Contains(t, table, "| **Email** | N/A |")
	assert.Contains(t, table, "| **Phone** | N/A |")
}

// TestRender_EmptyInput tests the no-data short circuit
func TestRender_EmptyInput(t *testing.T) {
	client := &stubClient{}
	r := New(client)

	assert.Equal(t, NoDataMessage, r.Render(context.Background(), ""))
	assert.Equal(t, NoDataMessage, r.Render(context.Background(), "   \n"))
	assert.Empty(t, client.prompt, "model must not be called for empty input")
}

// TestRender_Structured tests the deterministic path
func TestRender_Structured(t *testing.T) {
	client := &stubClient{}
	r := New(client)

	out := r.Render(context.Background(), `{"name": "Jane Doe"}`)
	assert.Contains(t, out, "| **Name** | Jane Doe |")
	assert.Empty(t, client.prompt, "model must not be called for structured input")
}

// TestRender_RawFallbackRecord tests that a degraded record routes its raw
// text through the model
func TestRender_RawFallbackRecord(t *testing.T) {
	client := &stubClient{output: "| Category | Details |\n|---|---|"}
	r := New(client)

	data, err := candidate.RawFallback("Jane Doe\nEngineer at Acme").Encode()
	require.NoError(t, err)

	out := r.Render(context.Background(), data)
	assert.Equal(t, client.output, out)
	assert.Contains(t, client.prompt, "Jane Doe\nEngineer at Acme")
}

// TestRender_UndecodableInput tests that plain text routes through the model
func TestRender_UndecodableInput(t *testing.T) {
	client := &stubClient{output: "salvaged table"}
	r := New(client)

	out := r.Render(context.Background(), "just some resume text")
	assert.Equal(t, "salvaged table", out)
}

// TestRenderFromRawText_EmptyText tests the empty-raw-text short circuit
func TestRenderFromRawText_EmptyText(t *testing.T) {
	client := &stubClient{}
	r := New(client)

	assert.Equal(t, EmptyRawTextMessage, r.RenderFromRawText(context.Background(), "  "))
	assert.Empty(t, client.prompt)
}

// TestRenderFromRawText_ModelError tests inline error reporting
func TestRenderFromRawText_ModelError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	r := New(client)

	out := r.RenderFromRawText(context.Background(), "some text")
	assert.Equal(t, "Error using LLM to generate table from raw text: quota exceeded", out)
}
