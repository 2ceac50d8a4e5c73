// Package iterable turns a sequence of raw values into a lazy sequence of constructed values.
//
// A Factory picks how a constructor is called with each raw element:
//
//	OneArgument                    T(d)
//	VariableLengthArgument         T(*d)    d is a slice or array
//	VariableLengthKeywordArgument  T(**d)   d is a map with string keys
//	K2OFallbackable                T(**d), then T(d) on a calling-convention mismatch
//	Adaptive                       T(**d) for maps, T(*d) for slices, then T(d)
//	Auto                           classify the constructor's signature
//
// Go has no keyword arguments, so constructors are values implementing Constructor. Func
// wraps an opaque single-value function, Declare pairs an explicit signature with a build
// function, Reflect wraps a Go function and Struct fills struct fields.
//
// Example:
//
//	it, err := iterable.Of(iterable.Auto, iterable.Func(parseInt))
//	if err != nil {
//	    return err
//	}
//
//	var failures iterable.Failures
//	for n, err := range it.Cast(raw, failures.Handler()) {
//	    ...
//	}
//
// Sequences are single-pass and pull-based: one construction per element, in source order,
// only when the consumer asks for the next value.
package iterable
