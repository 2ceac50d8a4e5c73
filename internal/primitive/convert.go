package primitive

import (
	"fmt"
	"reflect"
)

// ConversionError reports a value that cannot be stored in a target type without loss.
type ConversionError struct {
	Value any
	To    reflect.Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot use %v (%T) as %s", e.Value, e.Value, e.To)
}

// Convert returns v as a value of type to.
//
// Assignable values pass through. Numbers convert between numeric types when the round trip
// is exact, so 3.0 fits an int but 3.5 does not. Strings and booleans convert to named
// types over them. Slices convert element-wise, and string-keyed maps entry-wise.
// nil becomes the zero value of nilable types.
func Convert(v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch to.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(to), nil
		}

		return reflect.Value{}, &ConversionError{Value: v, To: to}
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(to) {
		return rv, nil
	}

	from, dst := FromReflectType(rv.Type()), FromReflectType(to)

	switch {
	case from.IsNumber() && dst.IsNumber():
		return convertNumber(rv, to)
	case from != 0 && dst != 0 && rv.Kind() == to.Kind():
		return rv.Convert(to), nil
	case to.Kind() == reflect.Slice && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array):
		return convertSlice(rv, to)
	case to.Kind() == reflect.Map && rv.Kind() == reflect.Map:
		return convertMap(rv, to)
	case to.Kind() == reflect.Pointer:
		elem, err := Convert(v, to.Elem())
		if err != nil {
			return reflect.Value{}, &ConversionError{Value: v, To: to}
		}

		ptr := reflect.New(to.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil
	}

	return reflect.Value{}, &ConversionError{Value: v, To: to}
}

func convertNumber(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	if !rv.CanConvert(to) {
		return reflect.Value{}, &ConversionError{Value: rv.Interface(), To: to}
	}

	out := rv.Convert(to)
	if !out.CanConvert(rv.Type()) || !out.Convert(rv.Type()).Equal(rv) {
		return reflect.Value{}, &ConversionError{Value: rv.Interface(), To: to}
	}

	// sign changes survive the round trip unchanged
	if isNegative(rv) != isNegative(out) {
		return reflect.Value{}, &ConversionError{Value: rv.Interface(), To: to}
	}

	return out, nil
}

func isNegative(rv reflect.Value) bool {
	switch {
	case rv.CanInt():
		return rv.Int() < 0
	case rv.CanFloat():
		return rv.Float() < 0
	}

	return false
}

func convertSlice(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	out := reflect.MakeSlice(to, rv.Len(), rv.Len())

	for i := range rv.Len() {
		elem, err := Convert(rv.Index(i).Interface(), to.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

func convertMap(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	out := reflect.MakeMapWithSize(to, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key, err := Convert(iter.Key().Interface(), to.Key())
		if err != nil {
			return reflect.Value{}, err
		}

		val, err := Convert(iter.Value().Interface(), to.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		out.SetMapIndex(key, val)
	}

	return out, nil
}
