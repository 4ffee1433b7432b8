package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testModel = `library: test_lib

classes:
  Counter:
    static_fns:
      - name: Counter_new
        method: new
        output: { name: Counter, custom: true }
    own_fns:
      - name: Counter_drop
        method: drop
        inputs:
          - name: this
            type: { name: Counter, custom: true }
    shared_fns:
      - name: Counter_value
        method: value
        inputs:
          - name: this
            type: { name: Counter, kind: ref, custom: true }
        output: { name: i64 }
    mut_fns:
      - name: Counter_increment
        method: increment
        inputs:
          - name: this
            type: { name: Counter, kind: ref_mut, custom: true }
`

func writeTestModel(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test_lib.yaml")
	if err := os.WriteFile(path, []byte(testModel), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateRoundTrip(t *testing.T) {
	modelPath := writeTestModel(t)
	outDir := t.TempDir()

	quiet = true
	genOutput = outDir
	genMode = "both"
	genExtensions = ""
	genDryRun = false
	defer func() { quiet = false }()

	if err := runGenerate(generateCmd, []string{modelPath}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	js, err := os.ReadFile(filepath.Join(outDir, "test_lib.js"))
	if err != nil {
		t.Fatalf("reading documented output: %v", err)
	}
	if !strings.Contains(string(js), "exports.Counter = Counter;") {
		t.Error("documented output missing Counter export")
	}
	if !strings.Contains(string(js), "'Counter_increment': ['void', ['pointer']],") {
		t.Error("documented output missing binding table entry")
	}

	ts, err := os.ReadFile(filepath.Join(outDir, "test_lib.ts"))
	if err != nil {
		t.Fatalf("reading annotated output: %v", err)
	}
	if !strings.Contains(string(ts), "export class Counter extends CounterRefMut {") {
		t.Error("annotated output missing owning class")
	}
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	modelPath := writeTestModel(t)
	outDir := t.TempDir()

	quiet = true
	genOutput = outDir
	genMode = "js"
	genExtensions = ""
	genDryRun = true
	defer func() {
		quiet = false
		genDryRun = false
	}()

	if err := runGenerate(generateCmd, []string{modelPath}); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "test_lib.js")); !os.IsNotExist(err) {
		t.Error("dry run must not write output files")
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	modelPath := writeTestModel(t)

	quiet = true
	genOutput = t.TempDir()
	genMode = "python"
	genExtensions = ""
	genDryRun = false
	defer func() {
		quiet = false
		genMode = "both"
	}()

	err := runGenerate(generateCmd, []string{modelPath})
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	modelPath := writeTestModel(t)

	quiet = true
	defer func() { quiet = false }()

	if err := runValidate(validateCmd, []string{modelPath}); err != nil {
		t.Fatalf("validate failed on good model: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	broken := strings.Replace(testModel, "kind: ref_mut", "kind: ref", 1)
	if err := os.WriteFile(bad, []byte(broken), 0644); err != nil {
		t.Fatal(err)
	}
	err := runValidate(validateCmd, []string{bad})
	if err == nil || !strings.Contains(err.Error(), "semantic validation failed") {
		t.Fatalf("expected semantic failure, got %v", err)
	}
}
