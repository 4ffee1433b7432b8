package loader

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema for binding model validation.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://livesplit.org/schemas/binding-model/v1",
  "title": "Binding Model",
  "description": "Schema for native-library binding model YAML files consumed by the wrapper generators.",
  "type": "object",
  "required": ["library", "classes"],
  "additionalProperties": false,
  "properties": {
    "library": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
    "header": { "type": "string" },
    "classes": {
      "type": "object",
      "minProperties": 1,
      "propertyNames": { "pattern": "^[A-Z][a-zA-Z0-9]*$" },
      "additionalProperties": { "$ref": "#/$defs/class" }
    }
  },
  "$defs": {
    "class": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "static_fns": { "$ref": "#/$defs/function_list" },
        "own_fns": { "$ref": "#/$defs/function_list" },
        "shared_fns": { "$ref": "#/$defs/function_list" },
        "mut_fns": { "$ref": "#/$defs/function_list" }
      }
    },
    "function_list": {
      "type": "array",
      "items": { "$ref": "#/$defs/function" }
    },
    "function": {
      "type": "object",
      "required": ["name", "method"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$" },
        "method": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "inputs": {
          "type": "array",
          "items": { "$ref": "#/$defs/parameter" }
        },
        "output": { "$ref": "#/$defs/type" }
      }
    },
    "parameter": {
      "type": "object",
      "required": ["name", "type"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z_][a-z0-9_]*$" },
        "type": { "$ref": "#/$defs/type" }
      }
    },
    "type": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "kind": { "type": "string", "enum": ["value", "ref", "ref_mut"] },
        "custom": { "type": "boolean" },
        "nullable": { "type": "boolean" }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	// Decode the schema JSON into a generic value first
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// SchemaJSON returns the embedded JSON Schema source.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateSchema validates raw YAML bytes against the binding model JSON Schema.
func ValidateSchema(yamlData []byte) error {
	// Parse YAML into a generic structure
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	converted := convertYAMLToJSON(raw)

	if err := compiledSchema.Validate(converted); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to JSON-compatible types.
// yaml.v3 parses maps as map[string]interface{} which is already
// JSON-compatible, but numbers need widening and nesting needs recursion.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}
