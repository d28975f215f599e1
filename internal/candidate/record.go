// Package candidate models the structured data the external model extracts
// from a resume. A record is a loose JSON object: every key is optional and
// the model is free to omit or reshape sections, so the type is a map rather
// than a rigid struct. When the model's output cannot be parsed at all, the
// record degrades to a raw-fallback variant carrying only the unparsed text.
package candidate

import (
	"encoding/json"
	"fmt"
)

// RawFallbackKey marks a degraded record: the value under this key is the
// model's original unparsed output.
const RawFallbackKey = "raw_text_fallback"

// UnknownPerson is the display name used when no name could be extracted.
const UnknownPerson = "Unknown Person"

// UnknownPersonParseError is the display name used when extraction degraded
// to the raw fallback.
const UnknownPersonParseError = "Unknown Person (Parsing Error)"

// Record is a decoded candidate-data object. Recognized keys are name,
// email, phone, education, skills, experience and projects; anything else is
// carried but ignored by the renderer.
type Record map[string]any

// Decode parses serialized candidate data. It fails when the input is not a
// JSON object; callers treat that as a signal to fall back to raw text.
func Decode(data string) (Record, error) {
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("candidate data is not a JSON object: %w", err)
	}
	return rec, nil
}

// RawFallback builds a degraded record around unparsed model output.
func RawFallback(rawText string) Record {
	return Record{RawFallbackKey: rawText}
}

// IsRawFallback reports whether the record is a degraded raw-text record.
func (r Record) IsRawFallback() bool {
	_, ok := r[RawFallbackKey]
	return ok
}

// RawText returns the unparsed text of a degraded record, or "".
func (r Record) RawText() string {
	s, _ := r[RawFallbackKey].(string)
	return s
}

// Name returns the extracted candidate name, or UnknownPerson when absent.
func (r Record) Name() string {
	if s, ok := r["name"].(string); ok && s != "" {
		return s
	}
	return UnknownPerson
}

// Encode serializes the record back to JSON. The serialized form is what the
// client caches and later feeds to the rendering and analysis endpoints.
func (r Record) Encode() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode candidate record: %w", err)
	}
	return string(data), nil
}

// EncodeIndented serializes the record with indentation for display.
func (r Record) EncodeIndented() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode candidate record: %w", err)
	}
	return string(data), nil
}
