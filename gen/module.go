package gen

import (
	"fmt"
	"io"

	"github.com/Eein/livesplit-core/model"
)

// moduleWriter emits one complete wrapper module in a single pass. A write
// error latches and suppresses all further output; the first error is
// returned from WriteModule.
type moduleWriter struct {
	w          io.Writer
	typeScript bool
	native     string // identifier of the FFI binding object
	exts       ExtensionTable
	err        error
}

func (mw *moduleWriter) printf(format string, args ...any) {
	if mw.err != nil {
		return
	}
	_, mw.err = fmt.Fprintf(mw.w, format, args...)
}

func (mw *moduleWriter) print(s string) {
	if mw.err != nil {
		return
	}
	_, mw.err = io.WriteString(mw.w, s)
}

// WriteModule writes the complete wrapper module for a binding model to w:
// the mode header, the FFI binding table, then the three-tier class
// hierarchy for every class in sorted name order. The typeScript flag
// selects annotated output over documented output; both modes share the
// same emission logic. exts may be nil for no per-class extensions.
func WriteModule(w io.Writer, m *model.Model, typeScript bool, exts ExtensionTable) error {
	mw := &moduleWriter{
		w:          w,
		typeScript: typeScript,
		native:     NativeObjectName(m.Library),
		exts:       exts,
	}

	mw.writeHeader(m)
	mw.writeBindingTable(m)
	for _, name := range m.SortedClassNames() {
		mw.writeClass(name, m.Classes[name])
	}
	return mw.err
}

func (mw *moduleWriter) writeHeader(m *model.Model) {
	if mw.typeScript {
		mw.print("\"use strict\";\n" +
			"import ffi = require('ffi');\n" +
			"import fs = require('fs');\n" +
			"import ref = require('ref');\n")
		if m.Header != "" {
			mw.printf("\n%s\n", m.Header)
		}
		mw.printf("\nvar %s = ffi.Library('%s', {", mw.native, m.Library)
	} else {
		mw.print("\"use strict\";\n" +
			"var ffi = require('ffi');\n" +
			"var fs = require('fs');\n" +
			"var ref = require('ref');\n")
		mw.printf("\nvar %s = ffi.Library('%s', {", mw.native, m.Library)
	}
}

// writeBindingTable emits one entry per native entry point across all
// classes, pairing each with its [return, [params...]] ABI tag list.
func (mw *moduleWriter) writeBindingTable(m *model.Model) {
	for _, name := range m.SortedClassNames() {
		class := m.Classes[name]
		for _, fn := range class.AllFns() {
			mw.printf("\n    '%s': [%s, [", fn.Name, ABITag(&fn.Output))
			for i := range fn.Inputs {
				if i != 0 {
					mw.print(", ")
				}
				mw.print(ABITag(&fn.Inputs[i].Type))
			}
			mw.print("]],")
		}
	}
	mw.print("\n});\n")
}
