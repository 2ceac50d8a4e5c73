package iterable

import (
	"errors"
	"fmt"

	"github.com/zoobzio/metricz"

	"typediterable/signature"
)

// Factory binds constructors to Iterables with one calling convention, or derives the
// convention from the constructor's signature when it is signature.Auto.
// Factories are immutable values.
type Factory struct {
	convention signature.Convention
}

// NewFactory returns a Factory for c.
func NewFactory(c signature.Convention) Factory {
	return Factory{convention: c}
}

// Convention returns the convention the factory was built with, possibly signature.Auto.
func (f Factory) Convention() signature.Convention {
	return f.convention
}

func (f Factory) String() string {
	return f.convention.String()
}

// Resolve returns the calling convention ctor would be cast with.
//
// For Auto the constructor's signature is classified; constructors that are not
// Introspectors, or report signature.ErrIntrospectionUnavailable, resolve to OneArgument.
// An unclassifiable signature is an error wrapping signature.ErrUnsupportedSignature.
func Resolve[T any](f Factory, ctor Constructor[T]) (signature.Convention, error) {
	if f.convention != signature.Auto {
		return f.convention, nil
	}

	introspector, ok := ctor.(Introspector)
	if !ok {
		return signature.OneArgument, nil
	}

	sig, err := introspector.Signature()
	if errors.Is(err, signature.ErrIntrospectionUnavailable) {
		return signature.OneArgument, nil
	}

	if err != nil {
		return signature.Auto, err
	}

	return signature.ClassifySignature(sig)
}

// Option configures an Iterable.
type Option func(*options)

type options struct {
	metrics *metricz.Registry
}

// WithMetrics records cast counters in registry instead of a private one.
func WithMetrics(registry *metricz.Registry) Option {
	return func(o *options) {
		o.metrics = registry
	}
}

// Of binds ctor to an Iterable using the factory's convention.
func Of[T any](f Factory, ctor Constructor[T], opts ...Option) (*Iterable[T], error) {
	if ctor == nil {
		return nil, errors.New("nil constructor")
	}

	convention, err := Resolve(f, ctor)
	if err != nil {
		return nil, fmt.Errorf("resolve calling convention: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.metrics == nil {
		o.metrics = metricz.New()
	}

	registerMetrics(o.metrics)

	counters := o.metrics
	cast, err := newStrategy(convention, ctor, func() {
		counters.Counter(CastFallbacksTotal).Inc()
	})
	if err != nil {
		return nil, err
	}

	return &Iterable[T]{convention: convention, cast: cast, metrics: counters}, nil
}

// MustOf is like Of but panics on error.
func MustOf[T any](f Factory, ctor Constructor[T], opts ...Option) *Iterable[T] {
	it, err := Of(f, ctor, opts...)
	if err != nil {
		panic(err)
	}

	return it
}
