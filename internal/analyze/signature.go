package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"typediterable/signature"
)

var errorType = types.Universe.Lookup("error").Type()

// ErrNotAConstructor marks New* functions whose results are not (T) or (T, error).
var ErrNotAConstructor = errors.New("function does not return (T) or (T, error)")

// analyzeFunc derives the signature of a package-level function. Go has no keyword
// arguments, so every parameter is positional-only and a variadic final parameter is a
// variadic positional capture.
func analyzeFunc(fn *types.Func, qualifier types.Qualifier) *Entry {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil {
		return nil
	}

	entry := &Entry{
		Kind:        EntryKindFunc,
		Declaration: fn.Name() + strings.TrimPrefix(types.TypeString(sig, qualifier), "func"),
	}

	results := sig.Results()
	if results.Len() == 0 || results.Len() > 2 ||
		(results.Len() == 2 && !types.Identical(results.At(1).Type(), errorType)) {
		entry.Err = ErrNotAConstructor
		return entry
	}

	params := make([]signature.Parameter, sig.Params().Len())

	taken := make(map[string]bool, len(params))
	for i := range params {
		taken[sig.Params().At(i).Name()] = true
	}

	for i := range params {
		name := sig.Params().At(i).Name()
		if name == "" || name == "_" {
			name = unusedName(fmt.Sprintf("arg%d", i), taken)
			taken[name] = true
		}

		params[i] = signature.Required(name, signature.KindPositionalOnly)
	}

	if sig.Variadic() {
		params[len(params)-1] = signature.VarArgs(params[len(params)-1].Name)
	}

	entry.Signature, entry.Err = signature.New(params...)

	return entry
}

// unusedName appends underscores to name until it is not taken.
func unusedName(name string, taken map[string]bool) string {
	for taken[name] {
		name += "_"
	}

	return name
}

type structParam struct {
	param signature.Parameter
	decl  string
}

// analyzeStruct derives the signature of a struct type from its exported, non-embedded
// fields and their typed tags.
func analyzeStruct(obj *types.TypeName, st *types.Struct) *Entry {
	entry := &Entry{Kind: EntryKindStruct}

	var fields []structParam

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		tag, err := signature.ParseFieldTag(field.Name(), reflect.StructTag(st.Tag(i)))
		if err != nil {
			entry.Err = err
			break
		}

		if tag.Skip {
			continue
		}

		if err := checkCaptureField(field, tag.Kind); err != nil {
			entry.Err = err
			break
		}

		p := signature.Required(tag.Name, tag.Kind)
		if tag.Optional && !tag.Kind.IsVariadic() {
			p = signature.Optional(tag.Name, tag.Kind, nil)
		}

		fields = append(fields, structParam{
			param: p,
			decl:  tag.Name + " " + types.TypeString(field.Type(), types.RelativeTo(obj.Pkg())),
		})
	}

	slices.SortStableFunc(fields, func(a, b structParam) int {
		return int(a.param.Kind) - int(b.param.Kind)
	})

	params := make([]signature.Parameter, len(fields))
	decls := make([]string, len(fields))

	for i, f := range fields {
		params[i] = f.param
		decls[i] = f.decl
	}

	entry.Declaration = obj.Name() + "{" + strings.Join(decls, ", ") + "}"

	if entry.Err == nil {
		entry.Signature, entry.Err = signature.New(params...)
	}

	return entry
}

func checkCaptureField(field *types.Var, kind signature.ParameterKind) error {
	switch kind {
	case signature.KindVarPositional:
		if _, ok := field.Type().Underlying().(*types.Slice); !ok {
			return fmt.Errorf("field %s: args capture must be a slice, got %s", field.Name(), field.Type())
		}
	case signature.KindVarKeyword:
		m, ok := field.Type().Underlying().(*types.Map)
		if !ok {
			return fmt.Errorf("field %s: kwargs capture must be a map with string keys, got %s", field.Name(), field.Type())
		}

		if key, ok := m.Key().Underlying().(*types.Basic); !ok || key.Kind() != types.String {
			return fmt.Errorf("field %s: kwargs capture must be a map with string keys, got %s", field.Name(), field.Type())
		}
	}

	return nil
}
