package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed defaults/advent.schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("advent.schema.json", schemaJSON)
})

// checkSchema validates a decoded YAML document against the embedded JSON
// schema. It catches misspelled keys, which decoding over Default() would
// silently ignore.
func checkSchema(doc any) error {
	if doc == nil {
		return nil
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	return nil
}
