// Package schemas validates import documents against the embedded JSON Schema.
//
// The schema checks shape only. Cross-field rules the schema cannot express
// (the counters adding up) are checked by [ValidateDocument] directly.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed import_document.schema.json
var importDocumentSchema []byte

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateDocument validates an in-memory document.
func ValidateDocument(doc models.Document) error {
	data, err := shared.MarshalJSON(doc, false)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
		return err
	}
	return checkCounters(doc)
}

// ValidateFile validates an import document previously written to path.
func ValidateFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrInputMissing, absPath)
	}
	if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
		return err
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode %s: %w", absPath, err)
	}
	return checkCounters(doc)
}

func validate(document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(importDocumentSchema), document)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

func checkCounters(doc models.Document) error {
	var errs []FieldError
	if doc.TotalMembers != len(doc.Members) {
		errs = append(errs, FieldError{
			Field:   "totalMembers",
			Message: fmt.Sprintf("is %d but members has %d entries", doc.TotalMembers, len(doc.Members)),
		})
	}
	if doc.MemberCount+doc.CollaboratorCount != doc.TotalMembers {
		errs = append(errs, FieldError{
			Field: "memberCount",
			Message: fmt.Sprintf("memberCount %d + collaboratorCount %d does not equal totalMembers %d",
				doc.MemberCount, doc.CollaboratorCount, doc.TotalMembers),
		})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
