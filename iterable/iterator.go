package iterable

import (
	"fmt"
	"iter"

	"github.com/zoobzio/metricz"

	"typediterable/signature"
)

// ErrorHandler is told about an element that failed to construct: the raw element, its
// position in the source and the failure. Returning nil skips the element and iteration
// continues; a non-nil error ends the sequence with that error.
type ErrorHandler func(raw any, index int, err error) error

// CastError is the error a sequence ends with when an element fails to construct and no
// handler absorbed it.
type CastError struct {
	Index      int
	Raw        any
	Convention signature.Convention
	Err        error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("element %d (%v): %s: %v", e.Index, e.Raw, e.Convention, e.Err)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// Iterable casts raw elements into T with one resolved calling convention.
// It holds no per-pass state: every Call, and every range over a sequence it returned,
// starts a fresh cursor, so one Iterable may serve concurrent traversals.
type Iterable[T any] struct {
	convention signature.Convention
	cast       strategy[T]
	metrics    *metricz.Registry
}

// Convention returns the resolved calling convention.
func (it *Iterable[T]) Convention() signature.Convention {
	return it.convention
}

// Metrics returns the registry holding the cast counters.
func (it *Iterable[T]) Metrics() *metricz.Registry {
	return it.metrics
}

// Call returns a lazy sequence constructing one T per element of src, in order, on demand.
//
// On failure without onError the sequence yields (zero, *CastError) once and ends; values
// already yielded stay with the consumer. With onError the handler runs before the next
// element is attempted, and the failing element is skipped unless the handler returns an
// error, which is then yielded and ends the sequence.
func (it *Iterable[T]) Call(src iter.Seq[any], onError ErrorHandler) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		index := 0
		for d := range src {
			i := index
			index++

			it.metrics.Counter(CastAttemptsTotal).Inc()

			v, err := it.cast(d)
			if err == nil {
				it.metrics.Counter(CastSuccessesTotal).Inc()

				if !yield(v, nil) {
					return
				}

				continue
			}

			it.metrics.Counter(CastFailuresTotal).Inc()

			if onError == nil {
				yield(zero, &CastError{Index: i, Raw: d, Convention: it.convention, Err: err})
				return
			}

			if herr := onError(d, i, err); herr != nil {
				yield(zero, herr)
				return
			}
		}
	}
}

// Cast is Call over the elements of a slice.
func (it *Iterable[T]) Cast(src []any, onError ErrorHandler) iter.Seq2[T, error] {
	return it.Call(Values(src), onError)
}

// Values adapts a slice of any element type to a raw element sequence.
func Values[S ~[]E, E any](s S) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains seq. It returns every value yielded before the first error, and that error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T

	for v, err := range seq {
		if err != nil {
			return out, err
		}

		out = append(out, v)
	}

	return out, nil
}
