package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jamesaoverton/hipc-gates/errors"
)

// documentSchema describes the shape of a raw configuration document. It
// catches type mistakes and unknown top-level keys before decoding.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "reference": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "value_scale": {"type": "string"},
        "gate_mappings": {"type": "string"},
        "special_gates": {"type": "string"},
        "marker_labels": {"type": "string"},
        "marker_synonyms": {"type": "string"},
        "cell_labels": {"type": "string"},
        "cell_synonyms": {"type": "string"},
        "cell_gates": {"type": "string"},
        "cell_parents": {"type": "string"},
        "excluded_experiments": {"type": "string"}
      }
    },
    "batch": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "project_column": {"type": "string"},
        "reported_column": {"type": "string"},
        "accession_column": {"type": "string"}
      }
    },
    "http": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "addr": {"type": "string"},
        "cors_origins": {"type": "array", "items": {"type": "string"}},
        "max_request_bytes": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

// validateDocument checks a raw config document against the embedded schema.
func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.WrapInvalid(err, "config", "validateDocument", "failed to validate config JSON")
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrInvalidConfig, strings.Join(problems, "; ")),
			"config", "validateDocument", "config document failed schema validation")
	}
	return nil
}
