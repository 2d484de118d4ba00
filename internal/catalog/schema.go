package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// datasetSchema describes the chapter dataset file. Validation runs once
// at load so a malformed dataset fails fast with a clear path into the
// offending record instead of surfacing as empty chapters later.
var datasetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"chapters": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"summary": map[string]any{
						"type": "string",
					},
					"questions": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"key", "questions", "answers"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"chapters"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDataset checks raw JSON against the dataset schema.
func validateDataset(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("dataset is not valid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("dataset schema validation failed: %w", err)
	}
	return nil
}

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition map through encoding/json.
		defBytes, err := json.Marshal(datasetSchema)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://chapter-dataset.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
