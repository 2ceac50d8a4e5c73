package signature

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnsupportedSignature is returned by Classify when no calling convention can serve a signature.
	ErrUnsupportedSignature = errors.New("signature not supported")
	// ErrIntrospectionUnavailable marks constructors whose parameters cannot be inspected.
	ErrIntrospectionUnavailable = errors.New("signature introspection unavailable")
	// ErrMismatch is the class of failures caused by calling a constructor with the wrong
	// calling convention: wrong number or names of arguments, or a raw element of the wrong shape.
	ErrMismatch = errors.New("calling convention mismatch")
	// ErrInvalidSignature is returned by New for malformed parameter lists.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrNotAFunction is returned by FromFunc for non-function values.
	ErrNotAFunction = errors.New("provided constructor is not a function")
	// ErrNotAStruct is returned by FromStruct for non-struct types.
	ErrNotAStruct = errors.New("provided type is not a struct")
	// ErrUnknownConvention is returned by ParseConvention.
	ErrUnknownConvention = errors.New("unknown calling convention")
)

// ArityError reports arguments that cannot be bound to a signature.
type ArityError struct {
	// Param is the offending parameter or keyword name, empty for count errors.
	Param string
	// Reason is a short description of the mismatch.
	Reason string
	// Suggestion is the closest declared parameter name for unexpected keywords.
	Suggestion string
}

func (e *ArityError) Error() string {
	var b strings.Builder

	b.WriteString(e.Reason)

	if e.Param != "" {
		fmt.Fprintf(&b, " %q", e.Param)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}

	return b.String()
}

// Is makes every ArityError match ErrMismatch.
func (e *ArityError) Is(target error) bool {
	return target == ErrMismatch
}

// ShapeError reports a raw element that cannot be spread the way a convention requires,
// e.g. a scalar where a mapping was needed.
type ShapeError struct {
	Want string // "mapping" or "sequence"
	Got  reflect.Type
}

func (e *ShapeError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}

	return fmt.Sprintf("argument must be a %s, not %s", e.Want, got)
}

// Is makes every ShapeError match ErrMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrMismatch
}
