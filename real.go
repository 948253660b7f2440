// Package real implements exact real arithmetic: every Real is a lazy
// expression tree of nested rational interval approximations, refined
// on demand rather than computed to a fixed precision up front.
package real

import (
	"precisely.dev/real/interval"
	"precisely.dev/real/node"
	"precisely.dev/real/number"
)

// DefaultBase is the digit-vector base used by every Real constructed
// through this package's exported API. It is a single named constant
// rather than one of several ad hoc literals scattered through the
// arithmetic, specifically so every Number or Node this package builds
// shares one unambiguous radix. It is a power of ten (distinct from
// the base-10 literal grammar itself, which spec §9 reserves for the
// decimal parse/format edges only) comfortably under digit.MaxBase:
// every decimal literal a user types is a finite base-10 fraction, and
// a power-of-ten working base is therefore also finite in this base,
// so Parse converts it exactly instead of flooring it to a
// non-terminating binary approximation.
const DefaultBase int64 = 1_000_000_000

// defaultParsePrecision bounds how many DefaultBase fractional digits
// Parse computes for a decimal literal's fractional part. Since
// DefaultBase is a power of ten, this is generous headroom rather than
// a hard requirement: conversion halts as soon as the remaining
// fraction hits zero, which happens within a handful of DefaultBase
// digits for any literal a person would actually type.
const defaultParsePrecision = 64

// Real is an exact real number: a lazy expression tree that can be
// refined to arbitrarily many digits of precision, up to whatever
// ceiling is in force (see WithMaxPrecision and the config package).
type Real struct {
	node *node.Node
}

// Parse reads a decimal literal (e.g. "-12.34", "1.5e10") into a Real.
func Parse(s string) (Real, error) {
	n, err := number.Parse(s, DefaultBase, defaultParsePrecision)
	if err != nil {
		return Real{}, wrapError(err, InvalidStringNumber, "real: "+err.Error())
	}
	return Real{node: node.Literal(n)}, nil
}

// FromDigits builds a Real directly from a base-DefaultBase digit
// vector, sign, and exponent, bypassing decimal parsing entirely. This
// is how an algorithm that already works in DefaultBase constructs its
// exact intermediate constants.
func FromDigits(negative bool, digits []uint64, exponent int) (Real, error) {
	if len(digits) == 0 {
		return Real{}, &Error{Kind: InvalidRepresentation, Msg: "real: digit vector must not be empty"}
	}
	for _, d := range digits {
		if d >= uint64(DefaultBase) {
			return Real{}, &Error{Kind: InvalidRepresentation, Msg: "real: digit out of range for base"}
		}
	}
	v := make([]uint64, len(digits))
	copy(v, digits)
	n := number.Number{Negative: negative, Digits: v, Exponent: exponent, Base: DefaultBase}.Normalize()
	return Real{node: node.Literal(n)}, nil
}

// FromFunc builds a Real whose value is defined algorithmically: f must
// return, for any requested precision step, an interval.Interval known
// to contain the true value, with width non-increasing as precision
// grows. This is how a limit process (a root, a series, a fixed point)
// with no closed-form finite digit expansion becomes a Real.
func FromFunc(f func(precision int) (interval.Interval, error)) Real {
	return Real{node: node.Algorithmic(DefaultBase, f)}
}

// WithMaxPrecision returns a copy of r with an explicit precision
// ceiling, overriding the process-wide default configured via
// config.SetMaxPrecision when r itself is refined (the ceiling then
// applies to r's whole subtree). An expression built from r resolves
// its own ceiling from its own override or the default; r's override
// is not consulted there.
func (r Real) WithMaxPrecision(p int) Real {
	return Real{node: r.node.WithMaxPrecision(p)}
}

func combine(op node.Op, a, b Real) Real {
	return Real{node: node.Binary(op, a.node, b.node)}
}

// Add returns a + b.
func Add(a, b Real) Real { return combine(node.OpAdd, a, b) }

// Sub returns a - b.
func Sub(a, b Real) Real { return combine(node.OpSub, a, b) }

// Mul returns a * b.
func Mul(a, b Real) Real { return combine(node.OpMul, a, b) }

// Div returns a / b. The division itself is lazy; a zero or
// zero-straddling divisor only surfaces as an error once the result is
// refined (by a comparison or by String/Format).
func Div(a, b Real) Real { return combine(node.OpDiv, a, b) }

// Neg returns -r, built as 0 - r so Node keeps exactly three shapes.
func Neg(r Real) Real {
	zero := node.Literal(number.Zero(DefaultBase))
	return Real{node: node.Binary(node.OpSub, zero, r.node)}
}
