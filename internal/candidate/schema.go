package candidate

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_schema.json
var schemaJSON string

// ValidationError carries the field-level schema violations of a record.
// Violations are advisory: the renderer tolerates shape drift, so callers
// log these rather than reject the record.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("candidate record schema violations: %s", strings.Join(e.Violations, "; "))
}

// ValidateSchema checks serialized candidate data against the record schema.
// Returns nil when valid, a *ValidationError listing violations when not,
// and a plain error when the input is not JSON at all.
func ValidateSchema(data string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewStringLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ValidationError{Violations: violations}
}
