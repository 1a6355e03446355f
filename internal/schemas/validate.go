// Package schemas validates incoming resume documents against a JSON
// Schema before the analysis pipeline ever sees them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchemaJSON string

var resumeSchema = gojsonschema.NewStringLoader(resumeSchemaJSON)

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates schema validation errors with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:")
	for _, e := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", e.Field, e.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateResume checks a raw resume document against the resume
// schema. Returns a *ValidationError describing every offending field,
// or an error when the document is not valid JSON at all.
func ValidateResume(document []byte) error {
	result, err := gojsonschema.Validate(resumeSchema, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate resume document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
