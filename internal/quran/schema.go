package quran

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema that an API response body must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func envelope(data map[string]any) map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"code", "data"},
		"properties": map[string]any{
			"code":   map[string]any{"type": "integer"},
			"status": map[string]any{"type": "string"},
			"data":   data,
		},
	}
}

func ayahItem(requireSurah bool) map[string]any {
	required := []string{"number", "text", "numberInSurah"}
	if requireSurah {
		required = append(required, "surah")
	}
	return map[string]any{
		"type":     "object",
		"required": required,
		"properties": map[string]any{
			"number":        map[string]any{"type": "integer"},
			"text":          map[string]any{"type": "string"},
			"numberInSurah": map[string]any{"type": "integer", "minimum": 1},
			"surah": map[string]any{
				"type":     "object",
				"required": []string{"number", "name"},
			},
		},
	}
}

var juzSchema = &Schema{
	Name: "juz",
	Definition: envelope(map[string]any{
		"type":     "object",
		"required": []string{"ayahs"},
		"properties": map[string]any{
			"ayahs": map[string]any{"type": "array", "items": ayahItem(true)},
		},
	}),
}

var surahSchema = &Schema{
	Name: "surah",
	Definition: envelope(map[string]any{
		"type":     "object",
		"required": []string{"number", "name", "numberOfAyahs", "ayahs"},
		"properties": map[string]any{
			"number":        map[string]any{"type": "integer"},
			"name":          map[string]any{"type": "string"},
			"numberOfAyahs": map[string]any{"type": "integer"},
			"ayahs":         map[string]any{"type": "array", "items": ayahItem(false)},
		},
	}),
}

var surahListSchema = &Schema{
	Name: "surah-list",
	Definition: envelope(map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"number", "name", "numberOfAyahs"},
		},
	}),
}

// validateBody validates a raw response body against schema.
func validateBody(schema *Schema, raw []byte) error {
	if schema == nil {
		return nil
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a plain decoded document, not Go maps with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
