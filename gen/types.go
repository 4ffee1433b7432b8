package gen

import (
	"github.com/Eein/livesplit-core/model"
)

// HostType returns the host-level type annotation for a type, with
// " | null" appended when the type is nullable.
func HostType(t *model.Type) string {
	formatted := HostTypeNonNull(t)
	if t.IsNullable {
		formatted += " | null"
	}
	return formatted
}

// HostTypeNonNull returns the non-nullable host type name. Custom types map
// to their wrapper class for the borrow category (Name, NameRef, NameRefMut);
// primitives map through a fixed table; any other borrowed non-custom type
// is an opaque byte buffer.
func HostTypeNonNull(t *model.Type) string {
	if t.IsCustom {
		switch t.Kind {
		case model.KindRef:
			return t.Name + "Ref"
		case model.KindRefMut:
			return t.Name + "RefMut"
		default:
			return t.Name
		}
	}

	if t.Kind == model.KindRef && t.Name == "c_char" {
		return "string"
	}
	if t.IsPointer() {
		return "Buffer"
	}

	switch t.Name {
	case "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "usize", "f32", "f64":
		return "number"
	case "bool":
		return "boolean"
	case model.UnitType:
		return "void"
	case "c_char":
		return "string"
	case model.JsonType:
		return "any"
	}
	return t.Name
}

// ABITag returns the low-level marshaling tag for the FFI binding table,
// including the surrounding quotes. Borrowed C strings and Json values
// cross the boundary as owned C strings; every other borrow is an opaque
// pointer; primitives map through a fixed width table; custom by-value
// types are pointers.
func ABITag(t *model.Type) string {
	if t.Name == model.JsonType || (t.Kind == model.KindRef && t.Name == "c_char") {
		return "'CString'"
	}
	if t.IsPointer() {
		return "'pointer'"
	}

	if !t.IsCustom {
		switch t.Name {
		case "i8":
			return "'int8'"
		case "i16":
			return "'int16'"
		case "i32":
			return "'int32'"
		case "i64":
			return "'int64'"
		case "u8":
			return "'uint8'"
		case "u16":
			return "'uint16'"
		case "u32":
			return "'uint32'"
		case "u64":
			return "'uint64'"
		case "usize":
			return "'size_t'"
		case "f32":
			return "'float'"
		case "f64":
			return "'double'"
		case "bool":
			return "'bool'"
		case model.UnitType:
			return "'void'"
		case "c_char":
			return "'char'"
		}
		return t.Name
	}

	return "'pointer'"
}
