package loader

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaJSONIsValidJSON(t *testing.T) {
	var doc interface{}
	if err := json.Unmarshal([]byte(SchemaJSON()), &doc); err != nil {
		t.Fatalf("embedded schema is not valid JSON: %v", err)
	}
}

func TestValidateSchemaAcceptsMinimalModel(t *testing.T) {
	data := []byte(`
library: livesplit_core
classes:
  Run:
    static_fns:
      - name: Run_new
        method: new
        output: { name: Run, custom: true }
`)
	if err := ValidateSchema(data); err != nil {
		t.Errorf("minimal model rejected: %v", err)
	}
}

func TestValidateSchemaRejectsNonMapDocument(t *testing.T) {
	if err := ValidateSchema([]byte(`- just\n- a\n- list`)); err == nil {
		t.Error("list document must be rejected")
	}
}

func TestValidateSchemaRejectsMalformedYAML(t *testing.T) {
	err := ValidateSchema([]byte("library: [unclosed"))
	if err == nil {
		t.Fatal("malformed YAML must be rejected")
	}
	if !strings.Contains(err.Error(), "parsing YAML") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSchemaRejectsBadMethodName(t *testing.T) {
	data := []byte(`
library: livesplit_core
classes:
  Run:
    static_fns:
      - name: Run_new
        method: New
        output: { name: Run, custom: true }
`)
	if err := ValidateSchema(data); err == nil {
		t.Error("PascalCase method name must be rejected")
	}
}
