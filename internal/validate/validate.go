// Package validate checks listing registration payloads against the JSON
// Schemas embedded under schemas/, one per listing kind. Validation happens
// before any mutation is attempted; failures carry field paths so the client
// can highlight inputs.
package validate

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator holds the compiled schemas for all listing kinds.
type Validator struct {
	schemas map[models.ListingKind]*jsonschema.Schema
}

// New compiles the embedded schemas. It fails if any kind is missing a schema
// file, so a new listing kind cannot ship without validation rules.
func New() (*Validator, error) {
	v := &Validator{schemas: make(map[models.ListingKind]*jsonschema.Schema)}
	for _, kind := range models.ListingKinds {
		b, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.json", kind))
		if err != nil {
			return nil, fmt.Errorf("read schema for %s: %w", kind, err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", kind, err)
		}
		v.schemas[kind] = rs
	}
	return v, nil
}

// Validate checks payload against the schema for kind. Schema violations are
// returned as *models.ValidationError; malformed JSON is reported the same way
// with a single "body" entry.
func (v *Validator) Validate(ctx context.Context, kind models.ListingKind, payload []byte) error {
	rs, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for listing kind %q", kind)
	}

	if !json.Valid(payload) {
		return &models.ValidationError{Fields: []string{"body: invalid JSON"}}
	}

	errs, err := rs.ValidateBytes(ctx, payload)
	if err != nil {
		return fmt.Errorf("validate %s payload: %w", kind, err)
	}
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for _, ke := range errs {
		fields = append(fields, fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message))
	}
	return &models.ValidationError{Fields: fields}
}
