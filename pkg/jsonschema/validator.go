// Package jsonschema validates JSON documents against JSON Schema,
// backed by santhosh-tekuri/jsonschema.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator is a compiled schema that can be applied to many documents.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a JSON Schema.
func NewValidator(schema []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate applies the schema to a JSON document. It returns the list of
// violations, empty when the document conforms, or an error when the
// document is not valid JSON at all.
func (v *Validator) Validate(doc []byte) ([]string, error) {
	var decoded interface{}
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	err := v.schema.Validate(decoded)
	if err == nil {
		return nil, nil
	}

	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return flatten(validationErr), nil
	}
	return []string{err.Error()}, nil
}

// Check is a one-shot helper: compile the schema and validate a document.
func Check(doc, schema []byte) ([]string, error) {
	validator, err := NewValidator(schema)
	if err != nil {
		return nil, err
	}
	return validator.Validate(doc)
}

// flatten walks the validation error tree and collects the leaf causes,
// which carry the most specific messages.
func flatten(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}
	var out []string
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
