package iterable

import (
	"reflect"

	"typediterable/signature"
)

var bytesType = reflect.TypeOf([]byte(nil))

// asMapping returns d as keyword arguments. Any map with string keys qualifies.
func asMapping(d any) (map[string]any, error) {
	if m, ok := d.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(d)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, &signature.ShapeError{Want: "mapping", Got: typeOf(d)}
	}

	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, nil
}

// asSequence returns the elements of d, a slice or array, as positional arguments.
// Strings are not sequences here.
func asSequence(d any) ([]any, error) {
	if s, ok := d.([]any); ok {
		return s, nil
	}

	rv := reflect.ValueOf(d)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &signature.ShapeError{Want: "sequence", Got: typeOf(d)}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, nil
}

// isCollection reports whether d is a mapping, slice or array other than a byte string.
func isCollection(d any) bool {
	t := typeOf(d)
	if t == nil || t == bytesType {
		return false
	}

	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}

	return false
}

func isMapping(d any) bool {
	t := typeOf(d)
	return t != nil && t.Kind() == reflect.Map
}

func typeOf(d any) reflect.Type {
	return reflect.TypeOf(d)
}
