package signature

import (
	"fmt"

	"typediterable/internal/match"
)

//go:generate go tool stringer -type=Convention -linecomment -output=convention_string.go

// Convention is the way a constructor is invoked with one raw element.
type Convention int

const (
	// Auto is not a calling convention: it asks for one to be derived from the signature.
	Auto Convention = iota // AUTO
	// OneArgument passes the raw element as the sole positional argument: T(d).
	OneArgument // ONE_ARGUMENT
	// VariableLengthArgument spreads a sequence as positional arguments: T(*d).
	VariableLengthArgument // VARIABLE_LENGTH_ARGUMENT
	// VariableLengthKeywordArgument spreads a mapping as keyword arguments: T(**d).
	VariableLengthKeywordArgument // VARIABLE_LENGTH_KEYWORD_ARGUMENT
	// K2OFallbackable tries T(**d) and retries with T(d) on a calling-convention mismatch.
	K2OFallbackable // K2O_FALLBACKABLE
	// Adaptive picks T(**d), T(*d) or T(d) from the shape of each raw element.
	Adaptive // ADAPTIVE

	// ConventionTotal is a constant that represents the total number of conventions defined
	ConventionTotal = int(iota)
)

// IsResolved reports whether c names a concrete calling convention.
func (c Convention) IsResolved() bool {
	return c > Auto && int(c) < ConventionTotal
}

// ParseConvention parses a convention name. Case and separators are ignored
// ("ONE_ARGUMENT", "one-argument", "OneArgument"), and the short forms
// "one", "varargs", "kwargs" and "k2o" are accepted.
func ParseConvention(s string) (Convention, error) {
	switch match.NormalizeIdent(s) {
	case "auto", "":
		return Auto, nil
	case "oneargument", "one":
		return OneArgument, nil
	case "variablelengthargument", "vararg", "varargs", "args":
		return VariableLengthArgument, nil
	case "variablelengthkeywordargument", "kwarg", "kwargs":
		return VariableLengthKeywordArgument, nil
	case "k2ofallbackable", "k2o":
		return K2OFallbackable, nil
	case "adaptive":
		return Adaptive, nil
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
