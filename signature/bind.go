package signature

import (
	"fmt"
	"maps"
	"slices"

	"typediterable/internal/match"
)

// Arguments are the values one constructor call is made with.
type Arguments struct {
	Positional []any
	Keywords   map[string]any
}

// Args returns Arguments with positional values only.
func Args(values ...any) Arguments {
	return Arguments{Positional: values}
}

// Kwargs returns Arguments with keyword values only.
func Kwargs(values map[string]any) Arguments {
	return Arguments{Keywords: values}
}

// Bound holds the result of binding Arguments to a Signature: a value for every named
// parameter (defaults applied) plus whatever the variadic captures absorbed.
type Bound struct {
	values map[string]any

	// Extra holds positional arguments absorbed by a variadic positional capture.
	Extra []any
	// ExtraKeywords holds keyword arguments absorbed by a variadic keyword capture.
	ExtraKeywords map[string]any
}

// Get returns the value bound to the named parameter.
func (b Bound) Get(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Value returns the value bound to the named parameter, or nil.
func (b Bound) Value(name string) any {
	return b.values[name]
}

// Values returns a copy of the named parameter values.
func (b Bound) Values() map[string]any {
	return maps.Clone(b.values)
}

// Bind matches args against sig.
//
// Positional values fill positional-only then positional-or-keyword parameters in order;
// surplus values go to the variadic positional capture. Keyword values fill
// positional-or-keyword and keyword-only parameters by name; unknown names go to the
// variadic keyword capture. Unfilled parameters take their defaults. Anything else is an
// *ArityError.
func Bind(sig Signature, args Arguments) (Bound, error) {
	b := Bound{values: make(map[string]any, len(sig.params))}

	var (
		positional    []Parameter
		varPositional bool
		varKeyword    bool
	)

	for _, p := range sig.params {
		switch {
		case p.Kind.IsPositional():
			positional = append(positional, p)
		case p.Kind == KindVarPositional:
			varPositional = true
		case p.Kind == KindVarKeyword:
			varKeyword = true
		}
	}

	for i, v := range args.Positional {
		if i < len(positional) {
			b.values[positional[i].Name] = v
			continue
		}

		if !varPositional {
			return Bound{}, &ArityError{Reason: tooManyPositional(len(positional), len(args.Positional))}
		}

		b.Extra = append(b.Extra, args.Positional[i:]...)

		break
	}

	// sorted for deterministic error reporting
	for _, name := range slices.Sorted(maps.Keys(args.Keywords)) {
		v := args.Keywords[name]
		p, declared := sig.Lookup(name)

		switch {
		case declared && p.Kind.IsKeyword():
			if _, dup := b.values[name]; dup {
				return Bound{}, &ArityError{Param: name, Reason: "multiple values for argument"}
			}

			b.values[name] = v

		case varKeyword:
			if b.ExtraKeywords == nil {
				b.ExtraKeywords = make(map[string]any)
			}

			b.ExtraKeywords[name] = v

		case declared && p.Kind == KindPositionalOnly:
			return Bound{}, &ArityError{Param: name, Reason: "positional-only argument passed as keyword"}

		default:
			suggestion, _ := match.Closest(name, sig.Names())
			return Bound{}, &ArityError{Param: name, Reason: "unexpected keyword argument", Suggestion: suggestion}
		}
	}

	for _, p := range sig.params {
		if p.Kind.IsVariadic() {
			continue
		}

		if _, ok := b.values[p.Name]; ok {
			continue
		}

		if !p.HasDefault {
			return Bound{}, &ArityError{Param: p.Name, Reason: "missing required " + p.Kind.String() + " argument"}
		}

		b.values[p.Name] = p.Default
	}

	return b, nil
}

func tooManyPositional(want, got int) string {
	return fmt.Sprintf("takes %d positional arguments but %d were given", want, got)
}
