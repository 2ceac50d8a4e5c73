package diagnostic

import (
	"errors"
	"fmt"

	"typediterable/signature"
)

// FromError converts a classification or cast failure into a diagnostic.
// Convention mismatches and unsupported signatures get their own codes; arity errors carry
// their suggestion over. raw is included in the message when index is not NoIndex.
func FromError(severity Severity, subject string, index int, raw any, err error) Diagnostic {
	d := Diagnostic{
		Severity: severity,
		Code:     CodeCastFailed,
		Message:  err.Error(),
		Subject:  subject,
		Index:    index,
	}

	var arity *signature.ArityError

	switch {
	case errors.Is(err, signature.ErrUnsupportedSignature):
		d.Code = CodeUnsupportedSignature
	case errors.Is(err, signature.ErrInvalidSignature):
		d.Code = CodeInvalidDescriptor
	case errors.Is(err, signature.ErrIntrospectionUnavailable):
		d.Code = CodeIntrospection
	case errors.As(err, &arity):
		d.Code = CodeMismatch
		d.Message = arity.Reason
		if arity.Param != "" {
			d.Message = fmt.Sprintf("%s %q", arity.Reason, arity.Param)
		}

		if arity.Suggestion != "" {
			d.Suggestions = []string{arity.Suggestion}
		}
	case errors.Is(err, signature.ErrMismatch):
		d.Code = CodeMismatch
	}

	if index != NoIndex {
		d.Message = fmt.Sprintf("%s (raw %v)", d.Message, raw)
	}

	return d
}

// Recorder returns an element error handler that records each failure with the given
// severity and lets iteration continue. It matches iterable.ErrorHandler.
func (d *Diagnostics) Recorder(subject string, severity Severity) func(raw any, index int, err error) error {
	return func(raw any, index int, err error) error {
		d.Add(FromError(severity, subject, index, raw, err))
		return nil
	}
}
