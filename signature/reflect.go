package signature

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

// TagKey is the struct tag read by FromStruct.
const TagKey = "typed"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ErrIsNotAConstructor is returned by FromFunc for functions that do not return a value,
// or return something other than (T) or (T, error).
var ErrIsNotAConstructor = errors.New("provided function is not a recognizable constructor")

// Func describes a Go function used as a constructor.
//
// Supports:
//   - func(a A, b B, ...) T
//   - func(a A, b B, ...) (T, error)
//   - either of the above with a variadic final parameter
//
// Go has no keyword arguments, so every parameter is positional-only; a variadic final
// parameter becomes a variadic positional capture.
type Func struct {
	Value        reflect.Value
	Signature    Signature
	In           []reflect.Type // declared parameter types, the variadic one as its slice type
	Out          reflect.Type
	HasErr       bool
	PackageAlias string
	Name         string
}

// FromFunc inspects fn and returns its constructor description.
func FromFunc(fn any) (Func, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Func{}, ErrNotAFunction
	}

	if fnVal.IsNil() {
		return Func{}, fmt.Errorf("%w: nil function", ErrNotAFunction)
	}

	fnType := fnVal.Type()

	switch fnType.NumOut() {
	default:
		return Func{}, ErrIsNotAConstructor
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return Func{}, ErrIsNotAConstructor
		}
	}

	in := make([]reflect.Type, fnType.NumIn())
	params := make([]Parameter, fnType.NumIn())

	for i := range in {
		in[i] = fnType.In(i)
		params[i] = Required(fmt.Sprintf("arg%d", i), KindPositionalOnly)
	}

	if fnType.IsVariadic() {
		params[len(params)-1] = VarArgs("args")
	}

	sig, err := New(params...)
	if err != nil {
		return Func{}, err
	}

	desc := Func{
		Value:     fnVal,
		Signature: sig,
		In:        in,
		Out:       fnType.Out(0),
		HasErr:    fnType.NumOut() == 2,
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		_, file := path.Split(fnPC.Name())
		desc.PackageAlias, desc.Name, _ = strings.Cut(file, ".")
	}

	return desc, nil
}

// FieldTag is a parsed `typed:"name,options"` struct tag.
//
// Options:
//   - posonly: positional-only parameter
//   - kwonly: keyword-only parameter
//   - optional: defaults to the field's zero value
//   - args: variadic positional capture (slice field)
//   - kwargs: variadic keyword capture (map[string]X field)
//
// Without a name the json tag name is used, then the Go field name. `typed:"-"` skips the field.
type FieldTag struct {
	Name     string
	Kind     ParameterKind
	Optional bool
	Skip     bool
}

// ParseFieldTag parses the typed tag of a struct field named field.
func ParseFieldTag(field string, tag reflect.StructTag) (FieldTag, error) {
	ft := FieldTag{Name: field, Kind: KindPositionalOrKeyword}

	raw, ok := tag.Lookup(TagKey)
	if raw == "-" {
		ft.Skip = true
		return ft, nil
	}

	if jsonName, _, _ := strings.Cut(tag.Get("json"), ","); jsonName != "" && jsonName != "-" {
		ft.Name = jsonName
	}

	if !ok {
		return ft, nil
	}

	name, opts, _ := strings.Cut(raw, ",")
	if name != "" {
		ft.Name = name
	}

	for _, opt := range strings.Split(opts, ",") {
		switch strings.TrimSpace(opt) {
		case "":
		case "posonly":
			ft.Kind = KindPositionalOnly
		case "kwonly":
			ft.Kind = KindKeywordOnly
		case "args":
			ft.Kind = KindVarPositional
		case "kwargs":
			ft.Kind = KindVarKeyword
		case "optional":
			ft.Optional = true
		default:
			return FieldTag{}, fmt.Errorf("field %s: unknown %s tag option %q", field, TagKey, opt)
		}
	}

	return ft, nil
}

// StructField links a signature parameter to the struct field it sets.
type StructField struct {
	Param Parameter
	Index int
	Type  reflect.Type
}

// Struct describes a struct type used as a constructor.
type Struct struct {
	Type      reflect.Type
	Signature Signature
	Fields    []StructField // in signature order
}

// FromStruct derives a signature from the exported, non-embedded fields of a struct type.
// Fields keep declaration order within a kind; kinds are ordered as a Signature requires.
func FromStruct(t reflect.Type) (Struct, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return Struct{}, fmt.Errorf("%w: %v", ErrNotAStruct, t)
	}

	var fields []StructField

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		ft, err := ParseFieldTag(f.Name, f.Tag)
		if err != nil {
			return Struct{}, fmt.Errorf("%s: %w", t, err)
		}

		if ft.Skip {
			continue
		}

		if err := checkCaptureField(f, ft.Kind); err != nil {
			return Struct{}, fmt.Errorf("%s: %w", t, err)
		}

		p := Required(ft.Name, ft.Kind)
		if ft.Optional && !ft.Kind.IsVariadic() {
			p = Optional(ft.Name, ft.Kind, reflect.Zero(f.Type).Interface())
		}

		fields = append(fields, StructField{Param: p, Index: i, Type: f.Type})
	}

	slices.SortStableFunc(fields, func(a, b StructField) int {
		return int(a.Param.Kind) - int(b.Param.Kind)
	})

	params := make([]Parameter, len(fields))
	for i, f := range fields {
		params[i] = f.Param
	}

	sig, err := New(params...)
	if err != nil {
		return Struct{}, fmt.Errorf("%s: %w", t, err)
	}

	return Struct{Type: t, Signature: sig, Fields: fields}, nil
}

func checkCaptureField(f reflect.StructField, kind ParameterKind) error {
	switch kind {
	case KindVarPositional:
		if f.Type.Kind() != reflect.Slice {
			return fmt.Errorf("field %s: args capture must be a slice, got %s", f.Name, f.Type)
		}
	case KindVarKeyword:
		if f.Type.Kind() != reflect.Map || f.Type.Key().Kind() != reflect.String {
			return fmt.Errorf("field %s: kwargs capture must be a map with string keys, got %s", f.Name, f.Type)
		}
	}

	return nil
}
