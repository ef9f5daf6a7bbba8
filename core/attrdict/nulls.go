// core/attrdict/nulls.go
package attrdict

import "reflect"

// IsNullLike reports whether a value is effectively null: nil, an empty
// string, or an empty collection. Non-empty strings are never null-like.
func IsNullLike(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *Dict:
		return x == nil || x.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// HasNullValue reports whether d holds key with a null-like value.
func HasNullValue(key string, d *Dict) bool {
	v, ok := d.Get(key)
	return ok && IsNullLike(v)
}

// NonNullValue reports whether d holds key with a non-null value.
func NonNullValue(key string, d *Dict) bool {
	v, ok := d.Get(key)
	return ok && !IsNullLike(v)
}

// MapHasNullValue is HasNullValue for plain maps.
func MapHasNullValue(key string, m map[string]any) bool {
	v, ok := m[key]
	return ok && IsNullLike(v)
}

// MapNonNullValue is NonNullValue for plain maps.
func MapNonNullValue(key string, m map[string]any) bool {
	v, ok := m[key]
	return ok && !IsNullLike(v)
}
