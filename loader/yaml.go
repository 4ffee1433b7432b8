package loader

import (
	"fmt"
	"os"

	"github.com/Eein/livesplit-core/model"
	"gopkg.in/yaml.v3"
)

// LoadModel reads and parses a YAML binding model file.
// It validates the YAML against the JSON Schema before unmarshalling.
func LoadModel(path string) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading binding model: %w", err)
	}

	// First validate against JSON Schema
	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	return unmarshalModel(data)
}

// LoadModelNoValidate parses raw YAML without schema validation.
// Used internally when schema validation has already been performed.
func LoadModelNoValidate(data []byte) (*model.Model, error) {
	return unmarshalModel(data)
}

func unmarshalModel(data []byte) (*model.Model, error) {
	var m model.Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing binding model: %w", err)
	}
	m.Normalize()
	return &m, nil
}
