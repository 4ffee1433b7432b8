// Package model defines the class/function/type description of a native
// library's C API, as produced by the upstream header collector. The
// generators consume this model without modifying it.
package model

import "sort"

// TypeKind is the borrow category of a custom type: a shared read-only
// view, a mutable view, or full ownership.
type TypeKind string

const (
	KindValue  TypeKind = "value"
	KindRef    TypeKind = "ref"
	KindRefMut TypeKind = "ref_mut"
)

// JsonType is the pseudo-type name for structured data that crosses the
// call boundary serialized as text.
const JsonType = "Json"

// UnitType is the type name of the void/unit return type.
const UnitType = "()"

// Type describes one parameter or return type.
type Type struct {
	Name       string   `yaml:"name"`
	Kind       TypeKind `yaml:"kind,omitempty"`
	IsCustom   bool     `yaml:"custom,omitempty"`
	IsNullable bool     `yaml:"nullable,omitempty"`
}

// IsJson returns true if the type is the Json pseudo-type.
func (t *Type) IsJson() bool {
	return t.Name == JsonType
}

// IsPointer returns true if the type is passed across the boundary as a
// borrowed pointer rather than by value.
func (t *Type) IsPointer() bool {
	return t.Kind == KindRef || t.Kind == KindRefMut
}

// Param is a named function input.
type Param struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
}

// Function describes a single exported native function.
type Function struct {
	// Name is the native entry point identifier, e.g. "Timer_split".
	Name string `yaml:"name"`
	// Method is the host-facing identifier in snake_case, e.g. "current_phase".
	Method string `yaml:"method"`
	Inputs []Param `yaml:"inputs,omitempty"`
	Output Type    `yaml:"output,omitempty"`
}

// IsStatic returns true if the function has no receiver, i.e. no leading
// input named "this".
func (f *Function) IsStatic() bool {
	return len(f.Inputs) == 0 || f.Inputs[0].Name != "this"
}

// HasReturn returns true if the function returns a value.
func (f *Function) HasReturn() bool {
	return f.Output.Name != UnitType
}

// DropMethod is the reserved method name of a class's destructor.
const DropMethod = "drop"

// Class groups the functions of one native class by receiver category.
type Class struct {
	// StaticFns have no receiver at all.
	StaticFns []Function `yaml:"static_fns,omitempty"`
	// OwnFns consume or construct the receiver; the destructor lives here.
	OwnFns []Function `yaml:"own_fns,omitempty"`
	// SharedFns borrow a read-only receiver.
	SharedFns []Function `yaml:"shared_fns,omitempty"`
	// MutFns borrow a mutable receiver.
	MutFns []Function `yaml:"mut_fns,omitempty"`
}

// Drop returns the class's destructor function, or nil if it has none.
func (c *Class) Drop() *Function {
	for i := range c.OwnFns {
		if c.OwnFns[i].Method == DropMethod {
			return &c.OwnFns[i]
		}
	}
	return nil
}

// AllFns returns every function of the class in the fixed binding-table
// order: static, own, shared, mut.
func (c *Class) AllFns() []Function {
	fns := make([]Function, 0, len(c.StaticFns)+len(c.OwnFns)+len(c.SharedFns)+len(c.MutFns))
	fns = append(fns, c.StaticFns...)
	fns = append(fns, c.OwnFns...)
	fns = append(fns, c.SharedFns...)
	fns = append(fns, c.MutFns...)
	return fns
}

// Model is the complete binding model for one native library.
type Model struct {
	// Library is the native library name passed to the FFI loader,
	// e.g. "livesplit_core".
	Library string `yaml:"library"`
	// Header is an optional verbatim block spliced into the typed output
	// after the import declarations (helper type declarations and the like).
	Header  string            `yaml:"header,omitempty"`
	Classes map[string]*Class `yaml:"classes"`
}

// SortedClassNames returns the class names in sorted order. Generation
// iterates classes in this order so output is deterministic.
func (m *Model) SortedClassNames() []string {
	names := make([]string, 0, len(m.Classes))
	for name := range m.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize fills in defaults the YAML representation leaves implicit:
// an omitted output becomes the unit type and an omitted kind becomes
// value. Loaders call this after unmarshalling.
func (m *Model) Normalize() {
	for _, class := range m.Classes {
		normalizeFns(class.StaticFns)
		normalizeFns(class.OwnFns)
		normalizeFns(class.SharedFns)
		normalizeFns(class.MutFns)
	}
}

func normalizeFns(fns []Function) {
	for i := range fns {
		if fns[i].Output.Name == "" {
			fns[i].Output.Name = UnitType
		}
		if fns[i].Output.Kind == "" {
			fns[i].Output.Kind = KindValue
		}
		for j := range fns[i].Inputs {
			if fns[i].Inputs[j].Type.Kind == "" {
				fns[i].Inputs[j].Type.Kind = KindValue
			}
		}
	}
}

var primitiveTypes = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"usize": true, "f32": true, "f64": true,
	"bool": true, UnitType: true, "c_char": true,
}

// IsPrimitive returns true if the name is in the closed primitive set.
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}
