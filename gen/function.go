package gen

import (
	"github.com/Eein/livesplit-core/model"
)

// writeFn emits one method or static function definition. The body
// enforces the ownership rules the host language cannot express itself:
// disposal checks before the call, handle nulling after a full transfer,
// and null/Json handling of the result.
func (mw *moduleWriter) writeFn(fn *model.Function) {
	isStatic := fn.IsStatic()
	hasReturn := fn.HasReturn()
	returnType := HostType(&fn.Output)
	returnTypeNonNull := HostTypeNonNull(&fn.Output)
	method := ToCamelCase(fn.Method)
	isJson := hasReturn && fn.Output.IsJson()

	params := fn.Inputs
	if !isStatic {
		params = fn.Inputs[1:]
	}

	// Documented mode carries the types in a comment block instead of
	// inline annotations.
	if !mw.typeScript {
		mw.print("\n    /**")
		for i := range params {
			mw.printf("\n     * @param {%s} %s", HostType(&params[i].Type), ToCamelCase(params[i].Name))
		}
		if hasReturn {
			mw.printf("\n     * @return {%s}", returnType)
		}
		mw.print("\n     */")
	}

	if isStatic {
		mw.printf("\n    static %s(", method)
	} else {
		mw.printf("\n    %s(", method)
	}

	for i := range params {
		if i != 0 {
			mw.print(", ")
		}
		mw.print(ToCamelCase(params[i].Name))
		if mw.typeScript {
			mw.printf(": %s", HostType(&params[i].Type))
		}
	}

	if mw.typeScript && hasReturn {
		mw.printf("): %s {\n        ", returnType)
	} else {
		mw.print(") {\n        ")
	}

	// Use after dispose is a recoverable runtime failure in the caller,
	// checked before the native call for every custom-typed input.
	for i := range fn.Inputs {
		if fn.Inputs[i].Type.IsCustom {
			name := ToCamelCase(fn.Inputs[i].Name)
			mw.printf("if (ref.isNull(%[1]s.ptr)) {\n            throw \"%[1]s is disposed\";\n        }\n        ", name)
		}
	}

	if hasReturn {
		if fn.Output.IsCustom {
			mw.printf("var result = new %s(", returnTypeNonNull)
		} else {
			mw.print("var result = ")
		}
	}

	mw.printf("%s.%s(", mw.native, fn.Name)

	for i := range fn.Inputs {
		if i != 0 {
			mw.print(", ")
		}
		mw.print(callArg(&fn.Inputs[i]))
	}

	mw.print(")")
	if hasReturn && fn.Output.IsCustom {
		mw.print(")")
	}
	mw.print(";")

	// A Value-kind custom input was transferred into the call; null its
	// handle so the caller cannot use or dispose it again.
	for i := range fn.Inputs {
		typ := &fn.Inputs[i].Type
		if typ.IsCustom && typ.Kind == model.KindValue {
			mw.printf("\n        %s.ptr = ref.NULL;", ToCamelCase(fn.Inputs[i].Name))
		}
	}

	if hasReturn {
		if fn.Output.IsNullable && fn.Output.IsCustom {
			mw.print("\n        if (ref.isNull(result.ptr)) {\n            return null;\n        }")
		}
		if isJson {
			mw.print("\n        return JSON.parse(result);")
		} else {
			mw.print("\n        return result;")
		}
	}

	mw.print("\n    }")
}

// callArg translates one input into the argument expression passed to the
// native entry point.
func callArg(p *model.Param) string {
	switch {
	case p.Name == "this":
		return "this.ptr"
	case p.Type.IsJson():
		return "JSON.stringify(" + ToCamelCase(p.Name) + ")"
	case p.Type.IsCustom:
		return ToCamelCase(p.Name) + ".ptr"
	default:
		return ToCamelCase(p.Name)
	}
}
