package iterable

import (
	"github.com/sirupsen/logrus"
)

// LogErrors returns a handler that logs each failure as a warning and skips the element.
func LogErrors(logger logrus.FieldLogger) ErrorHandler {
	return func(raw any, index int, err error) error {
		logger.WithFields(logrus.Fields{
			"index": index,
			"raw":   raw,
		}).WithError(err).Warn("skipping element that failed to construct")

		return nil
	}
}

// Chain runs handlers in order and stops at the first one returning an error.
func Chain(handlers ...ErrorHandler) ErrorHandler {
	return func(raw any, index int, err error) error {
		for _, h := range handlers {
			if herr := h(raw, index, err); herr != nil {
				return herr
			}
		}

		return nil
	}
}

// Failure is one element a handler was told about.
type Failure struct {
	Raw   any
	Index int
	Err   error
}

// Failures records handler calls.
type Failures []Failure

// Handler returns an ErrorHandler appending to f and skipping the element.
func (f *Failures) Handler() ErrorHandler {
	return func(raw any, index int, err error) error {
		*f = append(*f, Failure{Raw: raw, Index: index, Err: err})
		return nil
	}
}

// Indexes returns the source positions of the recorded failures.
func (f Failures) Indexes() []int {
	out := make([]int, len(f))
	for i, failure := range f {
		out[i] = failure.Index
	}

	return out
}
