// Package errors is the single error import for the module. Matching goes
// through the standard library; construction and wrapping record a stack
// trace via github.com/pkg/errors so %+v in logs shows where an error began.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching helpers.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// New returns an error with text and a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage prefixes err's message without recording a stack. Use it for
// sentinel errors whose origin is obvious from the message.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}
