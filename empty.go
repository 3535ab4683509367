package cacheaside

import "reflect"

// IsEmpty reports whether v counts as a missing result.
//
// Empty: nil (including nil pointers, interfaces, maps, slices, funcs and chans),
// "", zero-length slices, arrays and maps, and struct types with no fields.
// Pointers and interfaces are followed. Everything else is non-empty, including
// 0, false and structs whose fields all hold zero values.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	return isEmptyValue(reflect.ValueOf(v))
}

func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmptyValue(rv.Elem())
	case reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.NumField() == 0
	default:
		return false
	}
}
