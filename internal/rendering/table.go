// Package rendering converts extracted candidate data into a two-column
// Markdown table. The structured path is fully deterministic; when the data
// is not a well-formed record the pipeline falls back to asking the external
// model to salvage a table from the raw text.
package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jmatsumo/resume-screener/internal/candidate"
	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/prompts"
)

// Fixed messages for the short-circuit paths.
const (
	// NoDataMessage is returned for empty input without calling the model.
	NoDataMessage = "No resume data to display in table. Please parse a resume first."
	// EmptyRawTextMessage is returned when the fallback path receives no text.
	EmptyRawTextMessage = "Could not generate table. Raw resume output was empty."
)

// categoryOrder fixes the table's row order.
var categoryOrder = []string{"name", "email", "phone", "education", "skills", "experience", "projects"}

// Renderer is the JSON-to-Markdown rendering pipeline.
type Renderer struct {
	client llm.Client
}

// New creates a Renderer that uses client for the raw-text fallback path.
func New(client llm.Client) *Renderer {
	return &Renderer{client: client}
}

// Render converts serialized candidate data into a Markdown table.
// It never fails the caller: undecodable input, raw-fallback records and
// model errors all degrade to the fallback path or a fixed message.
func (r *Renderer) Render(ctx context.Context, candidateData string) string {
	if strings.TrimSpace(candidateData) == "" {
		return NoDataMessage
	}

	rec, err := candidate.Decode(candidateData)
	if err != nil {
		// Not a JSON object at all; let the model salvage it.
		return r.RenderFromRawText(ctx, candidateData)
	}
	if rec.IsRawFallback() {
		return r.RenderFromRawText(ctx, rec.RawText())
	}

	return BuildTable(rec)
}

// RenderFromRawText asks the external model to extract the seven categories
// from unstructured text and emit the same table shape. Model failures are
// reported inline as the returned string.
func (r *Renderer) RenderFromRawText(ctx context.Context, rawText string) string {
	if strings.TrimSpace(rawText) == "" {
		return EmptyRawTextMessage
	}

	template := prompts.MustGet("rendering.json", "table_from_raw_text")
	prompt := prompts.Format(template, map[string]string{"RawText": rawText})

	out, err := r.client.Complete(ctx, prompt, llm.TextAttachment(rawText))
	if err != nil {
		return fmt.Sprintf("Error using LLM to generate table from raw text: %v", err)
	}
	return out
}

// BuildTable renders a structured record into the | Category | Details |
// table. One row per recognized category in fixed order; missing categories
// render as N/A and unrecognized keys are dropped.
func BuildTable(rec candidate.Record) string {
	lines := []string{"| Category | Details |", "|---|---|"}

	for _, category := range categoryOrder {
		details, ok := rec[category]

		var formatted string
		switch {
		case !ok:
			formatted = "N/A"
		case category == "education":
			formatted = formatEducation(details)
		case category == "skills":
			formatted = formatSkills(details)
		case category == "experience":
			formatted = formatExperience(details)
		case category == "projects":
			formatted = formatProjects(details)
		default:
			formatted = formatScalar(details)
		}

		lines = append(lines, fmt.Sprintf("| **%s** | %s |", categoryLabel(category), formatted))
	}

	return strings.Join(lines, "\n")
}

// categoryLabel turns a category key into its display form, e.g.
// "education" -> "Education".
func categoryLabel(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// formatEducation renders one bullet per entry: bolded degree, institution,
// parenthesized years and location, comma-joined with empty fields omitted.
func formatEducation(details any) string {
	items, ok := details.([]any)
	if !ok || len(items) == 0 {
		return formatScalarOrNA(details)
	}

	var lines []string
	for _, item := range items {
		var entry string
		if m, ok := item.(map[string]any); ok {
			var parts []string
			if degree := stringify(m["degree"]); degree != "" {
				parts = append(parts, "**"+degree+"**")
			}
			if inst := stringify(m["institution"]); inst != "" {
				parts = append(parts, inst)
			}
			if years := stringify(m["years"]); years != "" {
				parts = append(parts, "("+years+")")
			}
			if loc := stringify(m["location"]); loc != "" {
				parts = append(parts, loc)
			}
			entry = strings.Join(parts, ", ")
		} else {
			entry = stringify(item)
		}
		if entry != "" {
			lines = append(lines, "- "+entry)
		}
	}

	return joinOrNA(lines)
}

// formatSkills accepts either a category->list mapping or a flat list.
func formatSkills(details any) string {
	switch v := details.(type) {
	case map[string]any:
		// Sort category names so the table is deterministic; JSON object
		// key order is lost on decode.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)

		var lines []string
		for _, name := range names {
			skills, ok := v[name].([]any)
			if !ok || len(skills) == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("**%s:** %s", name, joinStrings(skills, ", ")))
		}
		return joinOrNA(lines)
	case []any:
		var lines []string
		for _, skill := range v {
			lines = append(lines, "- "+stringify(skill))
		}
		return joinOrNA(lines)
	default:
		return formatScalarOrNA(details)
	}
}

// formatExperience renders a bolded title/company/dates header bullet per
// entry followed by indented responsibility sub-bullets. Entries missing any
// of the three header fields are dropped, matching the reference behavior.
func formatExperience(details any) string {
	items, ok := details.([]any)
	if !ok || len(items) == 0 {
		return formatScalarOrNA(details)
	}

	var lines []string
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			lines = append(lines, "- "+stringify(item))
			continue
		}
		_, hasTitle := m["title"]
		_, hasCompany := m["company"]
		_, hasDates := m["dates"]
		if !hasTitle || !hasCompany || !hasDates {
			continue
		}
		lines = append(lines, fmt.Sprintf("- **%s**, %s (%s):",
			stringify(m["title"]), stringify(m["company"]), stringify(m["dates"])))
		if resps, ok := m["responsibilities"].([]any); ok {
			for _, resp := range resps {
				lines = append(lines, "  - "+stringify(resp))
			}
		}
	}

	return joinOrNA(lines)
}

// formatProjects renders a bolded name header (with a technologies suffix
// when present) per entry followed by indented outcome sub-bullets.
func formatProjects(details any) string {
	items, ok := details.([]any)
	if !ok || len(items) == 0 {
		return formatScalarOrNA(details)
	}

	var lines []string
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			lines = append(lines, "- "+stringify(item))
			continue
		}
		name := stringify(m["name"])
		if name == "" {
			name = "Unnamed Project"
		}
		header := "- **" + name + "**"
		if tech, ok := m["technologies"].([]any); ok && len(tech) > 0 {
			header += fmt.Sprintf(" (Technologies: %s)", joinStrings(tech, ", "))
		}
		lines = append(lines, header+":")
		if outcomes, ok := m["outcomes"].([]any); ok {
			for _, outcome := range outcomes {
				lines = append(lines, "  - "+stringify(outcome))
			}
		}
	}

	return joinOrNA(lines)
}

// formatScalar renders a plain value; blank or "n/a" collapses to N/A.
func formatScalar(details any) string {
	s := stringify(details)
	if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), "n/a") {
		return "N/A"
	}
	return s
}

// formatScalarOrNA handles the unexpected-shape branches of the list
// categories: empty lists and odd types collapse to N/A or a plain string.
func formatScalarOrNA(details any) string {
	switch details.(type) {
	case []any, map[string]any, nil:
		return "N/A"
	default:
		return formatScalar(details)
	}
}

// joinOrNA joins cell lines with HTML line breaks so the result stays a
// single table cell.
func joinOrNA(lines []string) string {
	if len(lines) == 0 {
		return "N/A"
	}
	return strings.Join(lines, "<br>")
}

// joinStrings joins list elements after converting each to a plain string.
func joinStrings(items []any, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringify(item)
	}
	return strings.Join(parts, sep)
}

// stringify converts a decoded JSON value to its plain string form.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, []any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", t)
	}
}
