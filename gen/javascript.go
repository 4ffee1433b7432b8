package gen

import (
	"bytes"
)

func init() {
	Register("javascript", func() Generator { return &JavaScriptGenerator{} })
}

// JavaScriptGenerator produces the documented (untyped) wrapper module:
// every method carries a JSDoc comment and classes are exported through
// the exports table.
type JavaScriptGenerator struct{}

func (g *JavaScriptGenerator) Name() string { return "javascript" }

func (g *JavaScriptGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var buf bytes.Buffer
	if err := WriteModule(&buf, ctx.Model, false, ctx.Extensions); err != nil {
		return nil, err
	}
	return []*OutputFile{
		{Path: ctx.Model.Library + ".js", Content: buf.Bytes()},
	}, nil
}
