package gen

import (
	"github.com/Eein/livesplit-core/model"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	Model      *model.Model
	Extensions ExtensionTable
	OutputDir  string
	ModelPath  string // Path to the binding model YAML (for diagnostics)
	Verbose    bool
	DryRun     bool
}

// NewContext creates a new generation context.
func NewContext(m *model.Model, exts ExtensionTable, outputDir string, modelPath string) *Context {
	return &Context{
		Model:      m,
		Extensions: exts,
		OutputDir:  outputDir,
		ModelPath:  modelPath,
	}
}
