// Package validate performs semantic validation of a binding model beyond
// what the JSON Schema can express: receiver discipline, destructor rules,
// and the closed primitive universe.
package validate

import (
	"fmt"
	"strings"

	"github.com/Eein/livesplit-core/model"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "classes[Timer].shared_fns[1].inputs[0]"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// receiverKind maps each function category to the borrow kind its receiver
// must carry.
var receiverKind = map[string]model.TypeKind{
	"own_fns":    model.KindValue,
	"shared_fns": model.KindRef,
	"mut_fns":    model.KindRefMut,
}

// Validate performs semantic validation on a binding model.
func Validate(m *model.Model) *ValidationResult {
	result := &ValidationResult{}

	if m.Library == "" {
		result.addError("library", "library name must not be empty")
	}

	classNames := make(map[string]bool, len(m.Classes))
	for name := range m.Classes {
		classNames[name] = true
	}

	entryPoints := make(map[string]string) // native name → first path seen

	for _, className := range m.SortedClassNames() {
		class := m.Classes[className]
		classPath := fmt.Sprintf("classes[%s]", className)
		methodNames := make(map[string]bool)

		validateFnList(result, classPath, className, "static_fns", class.StaticFns, classNames, methodNames, entryPoints)
		validateFnList(result, classPath, className, "own_fns", class.OwnFns, classNames, methodNames, entryPoints)
		validateFnList(result, classPath, className, "shared_fns", class.SharedFns, classNames, methodNames, entryPoints)
		validateFnList(result, classPath, className, "mut_fns", class.MutFns, classNames, methodNames, entryPoints)

		validateDrop(result, classPath, class)
	}

	return result
}

func validateFnList(result *ValidationResult, classPath, className, category string, fns []model.Function, classNames, methodNames map[string]bool, entryPoints map[string]string) {
	for i := range fns {
		fn := &fns[i]
		path := fmt.Sprintf("%s.%s[%d]", classPath, category, i)

		if prev, dup := entryPoints[fn.Name]; dup {
			result.addError(path+".name", fmt.Sprintf("duplicate native entry point %q (already used at %s)", fn.Name, prev))
		} else {
			entryPoints[fn.Name] = path
		}

		if methodNames[fn.Method] {
			result.addError(path+".method", fmt.Sprintf("duplicate method %q in class %q", fn.Method, className))
		}
		methodNames[fn.Method] = true

		validateReceiver(result, path, className, category, fn)

		for j := range fn.Inputs {
			inputPath := fmt.Sprintf("%s.inputs[%d]", path, j)
			if j > 0 && fn.Inputs[j].Name == "this" {
				result.addError(inputPath, "receiver must be the first input")
			}
			validateType(result, inputPath+".type", &fn.Inputs[j].Type, classNames)
		}

		outPath := path + ".output"
		validateType(result, outPath, &fn.Output, classNames)
		if fn.Output.IsNullable && !fn.Output.IsCustom && !fn.Output.IsJson() {
			result.addError(outPath, fmt.Sprintf("non-custom output %q cannot be nullable", fn.Output.Name))
		}
	}
}

// validateReceiver checks the receiver discipline of a function against
// its category: static functions take no receiver, every other category
// takes a leading "this" of the enclosing class with the category's
// borrow kind.
func validateReceiver(result *ValidationResult, path, className, category string, fn *model.Function) {
	if category == "static_fns" {
		for j := range fn.Inputs {
			if fn.Inputs[j].Name == "this" {
				result.addError(fmt.Sprintf("%s.inputs[%d]", path, j), fmt.Sprintf("static function %q must not take a receiver", fn.Method))
			}
		}
		return
	}

	if fn.IsStatic() {
		result.addError(path, fmt.Sprintf("function %q in %s must take a leading \"this\" input", fn.Method, category))
		return
	}

	recv := &fn.Inputs[0].Type
	recvPath := path + ".inputs[0].type"
	if !recv.IsCustom {
		result.addError(recvPath, "receiver type must be custom")
	}
	if recv.Name != className {
		result.addError(recvPath, fmt.Sprintf("receiver type %q does not match class %q", recv.Name, className))
	}
	if want := receiverKind[category]; recv.Kind != want {
		result.addError(recvPath, fmt.Sprintf("receiver of a %s function must have kind %q, got %q", strings.TrimSuffix(category, "_fns"), want, recv.Kind))
	}
}

// validateDrop enforces that at most one function carries the destructor
// role and that it lives in own_fns.
func validateDrop(result *ValidationResult, classPath string, class *model.Class) {
	drops := 0
	for i := range class.OwnFns {
		if class.OwnFns[i].Method == model.DropMethod {
			drops++
			if drops > 1 {
				result.addError(fmt.Sprintf("%s.own_fns[%d]", classPath, i), "class declares more than one destructor")
			}
			if class.OwnFns[i].HasReturn() {
				result.addError(fmt.Sprintf("%s.own_fns[%d].output", classPath, i), "destructor must not return a value")
			}
		}
	}

	misplaced := []struct {
		category string
		fns      []model.Function
	}{
		{"static_fns", class.StaticFns},
		{"shared_fns", class.SharedFns},
		{"mut_fns", class.MutFns},
	}
	for _, list := range misplaced {
		for i := range list.fns {
			if list.fns[i].Method == model.DropMethod {
				result.addError(fmt.Sprintf("%s.%s[%d]", classPath, list.category, i), "destructor must be declared in own_fns")
			}
		}
	}
}

func validateType(result *ValidationResult, path string, t *model.Type, classNames map[string]bool) {
	switch t.Kind {
	case model.KindValue, model.KindRef, model.KindRefMut:
	default:
		result.addError(path, fmt.Sprintf("unknown type kind %q", t.Kind))
	}

	if t.IsCustom {
		if t.IsJson() {
			result.addError(path, "Json cannot be a custom type")
			return
		}
		if !classNames[t.Name] {
			result.addError(path, fmt.Sprintf("custom type %q is not a declared class", t.Name))
		}
		return
	}

	if !model.IsPrimitive(t.Name) && !t.IsJson() {
		result.addError(path, fmt.Sprintf("unknown type %q", t.Name))
	}
}
