package number

import (
	"errors"

	"precisely.dev/real/digit"
)

// ErrDivideByZero is returned by Div when the divisor is exactly zero.
var ErrDivideByZero = errors.New("number: division by zero")

// divisionMargin is the number of extra digits computed beyond
// maxPrecision before truncating, giving the caller room to detect an
// exact (remainder-zero) quotient and to round the truncated result up
// or down without losing a digit of the requested precision.
const divisionMargin = 5

// Div computes a single base-Base approximation of a/b, good to
// maxPrecision significant digits beyond its leading digit. When the
// division does not terminate within that many digits, roundUp selects
// which of the two nearest representable approximations is returned:
// false truncates toward zero magnitude (a lower bound on |a/b|), true
// rounds the truncated magnitude up by one unit in the last place (an
// upper bound). When the division terminates exactly, roundUp has no
// effect: both bounds coincide with the exact quotient.
//
// This follows the reference implementation's approach of producing a
// magnitude-only long division and then nudging the truncated result,
// but replaces its bracket/binary-search-over-reals technique with an
// equivalent schoolbook long division over the digit vectors directly:
// the bracket technique implicitly assumed the working base was even
// (so a bracket's midpoint divided evenly), which does not hold for an
// arbitrary base.
func Div(a, b Number, maxPrecision int, roundUp bool) (Number, error) {
	sameBase(a, b)
	if b.IsZero() {
		return Number{}, ErrDivideByZero
	}
	if a.IsZero() {
		return Zero(a.Base), nil
	}
	if maxPrecision < 0 {
		maxPrecision = 0
	}
	am, bm := a.Abs(), b.Abs()
	intA, _ := digit.TrimLeading(am.Digits)
	intB, _ := digit.TrimLeading(bm.Digits)
	la, lb := len(intA), len(intB)

	outDigits := maxPrecision + divisionMargin
	if lb > la {
		// A divisor longer than the dividend costs that many leading
		// quotient digits; pad for them so the significant digits still
		// reach maxPrecision.
		outDigits += lb - la
	}

	padded := append(append(digit.Vector{}, intA...), make(digit.Vector, outDigits)...)
	quotient, remainder := longDivide(padded, intB, a.Base)

	qTrim, _ := digit.TrimLeading(quotient)
	if !digit.IsZero(remainder) && roundUp {
		// RoundUp's carried-out bool is not consulted separately: when it
		// overflows the leading digit, the returned vector is already one
		// digit longer, and lenQ (below) is measured from that same
		// post-round vector, so the exponent bump RoundUp's overflow
		// requires falls out of lenQ automatically.
		qTrim, _ = digit.RoundUp(qTrim, a.Base)
	}
	lenQ := len(qTrim)

	exp := lenQ + (am.Exponent - la) - (bm.Exponent - lb) - outDigits
	result := Number{
		Negative: a.Negative != b.Negative,
		Digits:   qTrim,
		Exponent: exp,
		Base:     a.Base,
	}
	return result.Normalize(), nil
}

// longDivide performs schoolbook long division of two plain-integer
// digit vectors (most significant digit first), producing a quotient
// of the same length as dividend and the final remainder. Each output
// digit is found by binary-searching the trial multiple of divisor
// that fits under the running remainder, since a working base can be
// too large to try every candidate digit linearly.
func longDivide(dividend, divisor digit.Vector, base int64) (quotient, remainder digit.Vector) {
	quotient = make(digit.Vector, len(dividend))
	rem := digit.Vector{0}
	for i, d := range dividend {
		rem = shiftInDigit(rem, d)
		lo, hi := int64(0), base-1
		var best int64
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if compareAsInt(scaleDigit(mid, divisor, base), rem) <= 0 {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		quotient[i] = digit.Digit(best)
		trial := scaleDigit(best, divisor, base)
		rem, _ = digit.Sub(rem, len(rem), trial, len(trial), base)
		rem, _ = digit.TrimLeading(rem)
	}
	return quotient, rem
}

func shiftInDigit(rem digit.Vector, d digit.Digit) digit.Vector {
	joined := append(append(digit.Vector{}, rem...), d)
	trimmed, _ := digit.TrimLeading(joined)
	return trimmed
}

func scaleDigit(d int64, divisor digit.Vector, base int64) digit.Vector {
	if d == 0 {
		return digit.Vector{0}
	}
	prod, _ := digit.Mul(digit.Vector{digit.Digit(d)}, 1, divisor, len(divisor), base)
	trimmed, _ := digit.TrimLeading(prod)
	return trimmed
}

// compareAsInt compares two plain-integer digit vectors (no shared
// exponent assumed) by left-padding the shorter to the longer's length
// and delegating to digit.Compare.
func compareAsInt(a, b digit.Vector) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make(digit.Vector, n)
	copy(pa[n-len(a):], a)
	pb := make(digit.Vector, n)
	copy(pb[n-len(b):], b)
	return digit.Compare(pa, pb)
}
