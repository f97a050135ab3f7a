package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildChartJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the chart documents the extractor accepts.
func BuildChartJSONSchema() map[string]any {
	observation := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"code":       map[string]any{"type": "string", "minLength": 1},
			"value":      map[string]any{"type": "string"},
			"unit":       map[string]any{"type": "string"},
			"date":       map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"source_ref": map[string]any{"type": "string"},
		},
		"required": []string{"code"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"patient_id": map[string]any{"type": "string", "minLength": 1},
			"observations": map[string]any{
				"type":  "array",
				"items": observation,
			},
		},
		"required": []string{"patient_id", "observations"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
