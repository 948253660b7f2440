package real

import (
	"errors"

	"precisely.dev/real/interval"
	"precisely.dev/real/node"
	"precisely.dev/real/number"
)

// Kind classifies the way a Real operation failed, so callers can
// branch on errors.As(err, &kindErr) without string-matching messages.
type Kind int

const (
	// InvalidStringNumber: Parse was given text that is not a
	// well-formed real literal.
	InvalidStringNumber Kind = iota
	// UndefinedMaxPrecision: an operation needed a precision ceiling
	// and neither the Real nor the process default supplied one.
	UndefinedMaxPrecision
	// PrecisionExceeded: refinement reached its ceiling without
	// deciding the requested question (a comparison, or a division's
	// denominator sign).
	PrecisionExceeded
	// DivideByZero: a division's denominator was proven to be exactly
	// zero.
	DivideByZero
	// InvalidDenominator: no operation in this package returns this
	// kind. A denominator whose enclosure still contains zero at the
	// ceiling, without being provably zero, is reported as
	// PrecisionExceeded.
	InvalidDenominator
	// DivergentDivision: an interval-level division was attempted
	// directly against a denominator interval that straddles zero.
	DivergentDivision
	// InvalidRepresentation: a digit vector passed to FromDigits was
	// malformed (empty, or containing an out-of-range digit).
	InvalidRepresentation
)

// Error is the error type returned by every fallible operation in this
// package.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func wrapError(err error, fallback Kind, msg string) *Error {
	var parseErr *number.ParseError
	switch {
	case errors.As(err, &parseErr):
		return &Error{Kind: InvalidStringNumber, Msg: msg}
	case errors.Is(err, node.ErrUndefinedMaxPrecision):
		return &Error{Kind: UndefinedMaxPrecision, Msg: msg}
	case errors.Is(err, node.ErrPrecisionExceeded):
		return &Error{Kind: PrecisionExceeded, Msg: msg}
	case errors.Is(err, node.ErrDivideByZero), errors.Is(err, number.ErrDivideByZero):
		return &Error{Kind: DivideByZero, Msg: msg}
	case errors.Is(err, interval.ErrDivergentDivision):
		return &Error{Kind: DivergentDivision, Msg: msg}
	default:
		return &Error{Kind: fallback, Msg: msg}
	}
}
