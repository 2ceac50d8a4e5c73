package signature

import (
	"fmt"

	"typediterable/internal/match"
)

//go:generate go tool stringer -type=ParameterKind -linecomment -output=kind_string.go

// ParameterKind restricts how an argument may be supplied for a parameter.
// The constant order is the order parameters must appear in a Signature.
type ParameterKind int

const (
	KindPositionalOnly      ParameterKind = iota // positional-only
	KindPositionalOrKeyword                      // positional-or-keyword
	KindVarPositional                            // var-positional
	KindKeywordOnly                              // keyword-only
	KindVarKeyword                               // var-keyword

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsPositional reports whether an argument can be bound to the parameter by position.
func (k ParameterKind) IsPositional() bool {
	return k == KindPositionalOnly || k == KindPositionalOrKeyword
}

// IsKeyword reports whether an argument can be bound to the parameter by name.
func (k ParameterKind) IsKeyword() bool {
	return k == KindPositionalOrKeyword || k == KindKeywordOnly
}

// IsVariadic reports whether the parameter captures any number of extra arguments.
func (k ParameterKind) IsVariadic() bool {
	return k == KindVarPositional || k == KindVarKeyword
}

// ParseParameterKind parses a kind name. Separators and case are ignored, so
// "keyword-only", "KEYWORD_ONLY" and "KeywordOnly" are the same kind.
// "args" and "kwargs" are accepted for the variadic kinds.
func ParseParameterKind(s string) (ParameterKind, error) {
	switch match.NormalizeIdent(s) {
	case "positionalonly", "posonly":
		return KindPositionalOnly, nil
	case "", "positionalorkeyword":
		return KindPositionalOrKeyword, nil
	case "varpositional", "args":
		return KindVarPositional, nil
	case "keywordonly", "kwonly":
		return KindKeywordOnly, nil
	case "varkeyword", "kwargs":
		return KindVarKeyword, nil
	}

	return 0, fmt.Errorf("unknown parameter kind %q", s)
}
