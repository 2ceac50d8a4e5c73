package iterable

import (
	"errors"
	"fmt"

	"typediterable/signature"
)

// strategy casts one raw element.
type strategy[T any] func(d any) (T, error)

// newStrategy selects the casting strategy for a resolved convention.
// onFallback runs each time a fallback-capable strategy retries with another convention.
func newStrategy[T any](c signature.Convention, ctor Constructor[T], onFallback func()) (strategy[T], error) {
	switch c {
	case signature.OneArgument:
		return func(d any) (T, error) { return castOne(ctor, d) }, nil

	case signature.VariableLengthArgument:
		return func(d any) (T, error) { return castSpread(ctor, d) }, nil

	case signature.VariableLengthKeywordArgument:
		return func(d any) (T, error) { return castKeywords(ctor, d) }, nil

	case signature.K2OFallbackable:
		return func(d any) (T, error) {
			v, err := castKeywords(ctor, d)
			if !isMismatch(err) {
				return v, err
			}

			onFallback()

			return castOne(ctor, d)
		}, nil

	case signature.Adaptive:
		return func(d any) (T, error) {
			if isCollection(d) {
				spread := castSpread[T]
				if isMapping(d) {
					spread = castKeywords[T]
				}

				v, err := spread(ctor, d)
				if !isMismatch(err) {
					return v, err
				}

				onFallback()
			}

			return castOne(ctor, d)
		}, nil
	}

	return nil, fmt.Errorf("%w: %s has no casting strategy", signature.ErrUnknownConvention, c)
}

// castOne calls T(d).
func castOne[T any](ctor Constructor[T], d any) (T, error) {
	return ctor.Construct(signature.Args(d))
}

// castSpread calls T(*d).
func castSpread[T any](ctor Constructor[T], d any) (T, error) {
	values, err := asSequence(d)
	if err != nil {
		var zero T
		return zero, err
	}

	return ctor.Construct(signature.Args(values...))
}

// castKeywords calls T(**d).
func castKeywords[T any](ctor Constructor[T], d any) (T, error) {
	values, err := asMapping(d)
	if err != nil {
		var zero T
		return zero, err
	}

	return ctor.Construct(signature.Kwargs(values))
}

// isMismatch reports a failure caused by the calling convention rather than the values.
func isMismatch(err error) bool {
	return err != nil && errors.Is(err, signature.ErrMismatch)
}
