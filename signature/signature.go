package signature

import (
	"fmt"
	"strings"
)

// Parameter is one declared constructor parameter.
type Parameter struct {
	Name       string
	Kind       ParameterKind
	Default    any  // used when HasDefault is set and no argument binds the parameter
	HasDefault bool // Default may legitimately be nil
}

// Required returns a parameter of the given kind without a default.
func Required(name string, kind ParameterKind) Parameter {
	return Parameter{Name: name, Kind: kind}
}

// Optional returns a parameter of the given kind defaulting to def.
func Optional(name string, kind ParameterKind, def any) Parameter {
	return Parameter{Name: name, Kind: kind, Default: def, HasDefault: true}
}

// VarArgs returns a variadic positional capture parameter.
func VarArgs(name string) Parameter {
	return Parameter{Name: name, Kind: KindVarPositional}
}

// VarKwargs returns a variadic keyword capture parameter.
func VarKwargs(name string) Parameter {
	return Parameter{Name: name, Kind: KindVarKeyword}
}

func (p Parameter) String() string {
	var prefix string

	switch p.Kind {
	case KindVarPositional:
		prefix = "*"
	case KindVarKeyword:
		prefix = "**"
	}

	if p.HasDefault {
		return fmt.Sprintf("%s%s=%v", prefix, p.Name, p.Default)
	}

	return prefix + p.Name
}

// Signature is an ordered, validated parameter list.
type Signature struct {
	params []Parameter
}

// New validates params and returns a Signature. Parameters must appear in ParameterKind
// order, names must be unique and non-empty, and each variadic kind may appear once.
func New(params ...Parameter) (Signature, error) {
	seen := make(map[string]struct{}, len(params))
	last := KindPositionalOnly

	for i, p := range params {
		if p.Name == "" {
			return Signature{}, fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}

		if p.Kind < 0 || int(p.Kind) >= KindTotal {
			return Signature{}, fmt.Errorf("%w: parameter %q has unknown kind %d", ErrInvalidSignature, p.Name, p.Kind)
		}

		if _, dup := seen[p.Name]; dup {
			return Signature{}, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSignature, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Kind < last || (p.Kind == last && p.Kind.IsVariadic() && i > 0) {
			return Signature{}, fmt.Errorf("%w: %s parameter %q cannot follow a %s parameter",
				ErrInvalidSignature, p.Kind, p.Name, last)
		}

		if p.Kind.IsVariadic() && p.HasDefault {
			return Signature{}, fmt.Errorf("%w: %s parameter %q cannot have a default",
				ErrInvalidSignature, p.Kind, p.Name)
		}

		last = p.Kind
	}

	return Signature{params: append([]Parameter(nil), params...)}, nil
}

// MustNew is like New but panics on an invalid parameter list.
func MustNew(params ...Parameter) Signature {
	sig, err := New(params...)
	if err != nil {
		panic(err)
	}

	return sig
}

// Params returns a copy of the parameter list.
func (s Signature) Params() []Parameter {
	return append([]Parameter(nil), s.params...)
}

// Len returns the number of parameters.
func (s Signature) Len() int {
	return len(s.params)
}

// Lookup returns the parameter with the given name.
func (s Signature) Lookup(name string) (Parameter, bool) {
	for _, p := range s.params {
		if p.Name == name {
			return p, true
		}
	}

	return Parameter{}, false
}

// Names returns the names of the parameters that accept keyword arguments.
func (s Signature) Names() []string {
	var names []string

	for _, p := range s.params {
		if p.Kind.IsKeyword() {
			names = append(names, p.Name)
		}
	}

	return names
}

// String renders the signature with "/" after positional-only parameters and "*" before
// keyword-only ones when no variadic positional capture separates them.
func (s Signature) String() string {
	parts := make([]string, 0, len(s.params)+2)
	starred := false

	for i, p := range s.params {
		if p.Kind == KindVarPositional {
			starred = true
		}

		if p.Kind == KindKeywordOnly && !starred {
			parts = append(parts, "*")
			starred = true
		}

		parts = append(parts, p.String())

		if p.Kind == KindPositionalOnly && (i+1 == len(s.params) || s.params[i+1].Kind != KindPositionalOnly) {
			parts = append(parts, "/")
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
