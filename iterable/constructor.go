package iterable

import (
	"fmt"
	"reflect"

	"typediterable/internal/primitive"
	"typediterable/signature"
)

// Constructor builds a T from one call's arguments. Arguments of the wrong number or names
// must be reported as an error matching signature.ErrMismatch; any other error is treated
// as a value-level failure and never triggers a calling-convention fallback.
type Constructor[T any] interface {
	Construct(args signature.Arguments) (T, error)
}

// Introspector is implemented by constructors that can describe their parameters.
// Returning signature.ErrIntrospectionUnavailable makes the Auto factory fall back to
// OneArgument.
type Introspector interface {
	Signature() (signature.Signature, error)
}

// Func wraps an opaque single-value constructor such as a parser. It has no signature,
// so the Auto factory treats it as OneArgument.
func Func[T any](fn func(v any) (T, error)) Constructor[T] {
	return opaque[T](fn)
}

type opaque[T any] func(v any) (T, error)

func (fn opaque[T]) Construct(args signature.Arguments) (T, error) {
	var zero T

	if len(args.Keywords) > 0 {
		return zero, &signature.ArityError{Reason: "takes no keyword arguments"}
	}

	if len(args.Positional) != 1 {
		return zero, &signature.ArityError{
			Reason: fmt.Sprintf("takes 1 positional argument but %d were given", len(args.Positional)),
		}
	}

	return fn(args.Positional[0])
}

// Declare pairs an explicit constructor-shape descriptor with a build function.
// Arguments are bound against sig before build runs, so build only sees complete,
// well-named values.
func Declare[T any](sig signature.Signature, build func(b signature.Bound) (T, error)) Constructor[T] {
	return &declared[T]{sig: sig, build: build}
}

type declared[T any] struct {
	sig   signature.Signature
	build func(signature.Bound) (T, error)
}

func (d *declared[T]) Signature() (signature.Signature, error) {
	return d.sig, nil
}

func (d *declared[T]) Construct(args signature.Arguments) (T, error) {
	bound, err := signature.Bind(d.sig, args)
	if err != nil {
		var zero T
		return zero, err
	}

	return d.build(bound)
}

// Reflect wraps a Go function returning T or (T, error). Its parameters are positional-only
// and a variadic final parameter is a variadic positional capture. Arguments are converted
// to the parameter types without loss; a lossy conversion is a value-level failure.
func Reflect[T any](fn any) (Constructor[T], error) {
	desc, err := signature.FromFunc(fn)
	if err != nil {
		return nil, err
	}

	want := reflect.TypeFor[T]()
	if !desc.Out.AssignableTo(want) {
		return nil, fmt.Errorf("%w: %s.%s returns %s, not %s",
			signature.ErrIsNotAConstructor, desc.PackageAlias, desc.Name, desc.Out, want)
	}

	return &reflected[T]{desc: desc}, nil
}

type reflected[T any] struct {
	desc signature.Func
}

func (r *reflected[T]) Signature() (signature.Signature, error) {
	return r.desc.Signature, nil
}

func (r *reflected[T]) Construct(args signature.Arguments) (T, error) {
	var zero T

	bound, err := signature.Bind(r.desc.Signature, args)
	if err != nil {
		return zero, err
	}

	fnType := r.desc.Value.Type()
	in := make([]reflect.Value, 0, len(r.desc.In)+len(bound.Extra))

	fixed := len(r.desc.In)
	if fnType.IsVariadic() {
		fixed--
	}

	for i := range fixed {
		v, err := primitive.Convert(bound.Value(fmt.Sprintf("arg%d", i)), r.desc.In[i])
		if err != nil {
			return zero, fmt.Errorf("argument %d: %w", i, err)
		}

		in = append(in, v)
	}

	if fnType.IsVariadic() {
		elem := r.desc.In[fixed].Elem()
		for i, extra := range bound.Extra {
			v, err := primitive.Convert(extra, elem)
			if err != nil {
				return zero, fmt.Errorf("argument %d: %w", fixed+i, err)
			}

			in = append(in, v)
		}
	}

	out := r.desc.Value.Call(in)
	if r.desc.HasErr && !out[1].IsNil() {
		return zero, out[1].Interface().(error)
	}

	result, _ := out[0].Interface().(T)

	return result, nil
}

// Struct builds T, a struct or pointer to struct, by setting its exported fields.
// See signature.FromStruct for how fields map to parameters.
func Struct[T any]() (Constructor[T], error) {
	t := reflect.TypeFor[T]()

	structType := t
	if t.Kind() == reflect.Pointer {
		structType = t.Elem()
	}

	desc, err := signature.FromStruct(structType)
	if err != nil {
		return nil, err
	}

	return &structured[T]{desc: desc, pointer: t.Kind() == reflect.Pointer}, nil
}

type structured[T any] struct {
	desc    signature.Struct
	pointer bool
}

func (s *structured[T]) Signature() (signature.Signature, error) {
	return s.desc.Signature, nil
}

func (s *structured[T]) Construct(args signature.Arguments) (T, error) {
	var zero T

	bound, err := signature.Bind(s.desc.Signature, args)
	if err != nil {
		return zero, err
	}

	ptr := reflect.New(s.desc.Type)
	dst := ptr.Elem()

	for _, f := range s.desc.Fields {
		var v any

		switch f.Param.Kind {
		case signature.KindVarPositional:
			if bound.Extra == nil {
				continue
			}

			v = bound.Extra
		case signature.KindVarKeyword:
			if bound.ExtraKeywords == nil {
				continue
			}

			v = bound.ExtraKeywords
		default:
			v = bound.Value(f.Param.Name)
		}

		rv, err := primitive.Convert(v, f.Type)
		if err != nil {
			return zero, fmt.Errorf("field %s: %w", s.desc.Type.Field(f.Index).Name, err)
		}

		dst.Field(f.Index).Set(rv)
	}

	var out any = dst.Interface()
	if s.pointer {
		out = ptr.Interface()
	}

	return out.(T), nil
}
