package gen

import (
	"bytes"
)

func init() {
	Register("typescript", func() Generator { return &TypeScriptGenerator{} })
}

// TypeScriptGenerator produces the annotated (typed) wrapper module:
// parameters and returns carry inline type annotations and classes are
// exported with the export keyword.
type TypeScriptGenerator struct{}

func (g *TypeScriptGenerator) Name() string { return "typescript" }

func (g *TypeScriptGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var buf bytes.Buffer
	if err := WriteModule(&buf, ctx.Model, true, ctx.Extensions); err != nil {
		return nil, err
	}
	return []*OutputFile{
		{Path: ctx.Model.Library + ".ts", Content: buf.Bytes()},
	}, nil
}
