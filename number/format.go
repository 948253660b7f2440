package number

import (
	"strconv"
	"strings"

	"precisely.dev/real/digit"
)

// scalarToVector writes a positive scalar as a digit.Vector in the
// given base, most significant digit first.
func scalarToVector(value, base int64) digit.Vector {
	if value == 0 {
		return digit.Vector{0}
	}
	var rev []digit.Digit
	for value > 0 {
		rev = append(rev, digit.Digit(value%base))
		value /= base
	}
	v := make(digit.Vector, len(rev))
	for i, d := range rev {
		v[len(rev)-1-i] = d
	}
	return v
}

// vectorToScalar reads a digit.Vector in the given base as a plain
// scalar. Callers only use it where the value is known to be small
// enough to fit, namely single converted digits.
func vectorToScalar(v digit.Vector, base int64) int64 {
	var val int64
	for _, d := range v {
		val = val*base + int64(d)
	}
	return val
}

// splitIntFrac splits a Number's magnitude into its integer-part digits
// and fractional-part digits, both expressed in n.Base, using the
// exponent to locate the boundary. The integer part is always at least
// one digit ("0" for a purely fractional value).
func splitIntFrac(n Number) (intVec, fracVec digit.Vector) {
	e := n.Exponent
	d := n.Digits
	switch {
	case e <= 0:
		intVec = digit.Vector{0}
		if -e > 0 {
			fracVec = make(digit.Vector, -e)
			fracVec = append(fracVec, d...)
		} else {
			fracVec = append(digit.Vector{}, d...)
		}
	case e >= len(d):
		intVec = append(append(digit.Vector{}, d...), make(digit.Vector, e-len(d))...)
		fracVec = digit.Vector{}
	default:
		intVec = append(digit.Vector{}, d[:e]...)
		fracVec = append(digit.Vector{}, d[e:]...)
	}
	if len(intVec) == 0 {
		intVec = digit.Vector{0}
	}
	return intVec, fracVec
}

// splitLastK splits v (a digit vector in some base) into the part
// before its last k digits and those last k digits, left-padding with
// zeros if v is shorter than k. Because positional notation makes the
// trailing k digits of a vector exactly its value modulo base^k, this
// needs no arithmetic, only slicing.
func splitLastK(v digit.Vector, k int) (rest, last digit.Vector) {
	if k == 0 {
		return append(digit.Vector{}, v...), digit.Vector{}
	}
	if len(v) <= k {
		padded := make(digit.Vector, k)
		copy(padded[k-len(v):], v)
		return digit.Vector{0}, padded
	}
	return append(digit.Vector{}, v[:len(v)-k]...), append(digit.Vector{}, v[len(v)-k:]...)
}

// convertBase re-expresses n's magnitude in targetBase, carrying its
// fractional part out to at most precision target-base digits. The
// integer part converts exactly via repeated scalar division; the
// fractional part converts via the mirror operation, repeated scalar
// multiplication, each step peeling one target-base digit off the
// front of the running product.
func convertBase(n Number, targetBase int64, precision int) Number {
	if n.Base == targetBase {
		return n.Normalize()
	}
	intVec, fracVec := splitIntFrac(n)

	remaining, _ := digit.TrimLeading(intVec)
	var revInt []digit.Digit
	for !digit.IsZero(remaining) {
		q, r := digit.DivModSmall(remaining, n.Base, targetBase)
		revInt = append(revInt, digit.Digit(r))
		remaining, _ = digit.TrimLeading(q)
	}
	targetInt := make(digit.Vector, len(revInt))
	for i, d := range revInt {
		targetInt[len(revInt)-1-i] = d
	}

	var targetFrac []digit.Digit
	frac := fracVec
	denomLen := len(frac)
	if denomLen > 0 {
		targetBaseVec := scalarToVector(targetBase, n.Base)
		for i := 0; i < precision && !digit.IsZero(frac); i++ {
			prod, _ := digit.Mul(frac, len(frac), targetBaseVec, len(targetBaseVec), n.Base)
			quotient, rest := splitLastK(prod, denomLen)
			quotient, _ = digit.TrimLeading(quotient)
			targetFrac = append(targetFrac, digit.Digit(vectorToScalar(quotient, n.Base)))
			frac = rest
		}
	}

	digits := append(append(digit.Vector{}, targetInt...), targetFrac...)
	if len(digits) == 0 {
		digits = digit.Vector{0}
	}
	result := Number{Negative: n.Negative, Digits: digits, Exponent: len(targetInt), Base: targetBase}
	return result.Normalize()
}

func digitsToDecimalString(v digit.Vector) string {
	var sb strings.Builder
	for _, d := range v {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

func trimLeadingZerosKeepOne(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// FormatDecimal renders n as a decimal string with exactly precision
// fractional digits (truncating or zero-padding as needed), converting
// first if n is not already base 10.
func FormatDecimal(n Number, precision int) string {
	if precision < 0 {
		precision = 0
	}
	dec := n
	if n.Base != 10 {
		dec = convertBase(n, 10, precision)
	}
	intVec, fracVec := splitIntFrac(dec)
	if len(fracVec) > precision {
		fracVec = fracVec[:precision]
	} else if len(fracVec) < precision {
		fracVec = append(append(digit.Vector{}, fracVec...), make(digit.Vector, precision-len(fracVec))...)
	}

	intStr := trimLeadingZerosKeepOne(digitsToDecimalString(intVec))
	var sb strings.Builder
	if dec.Negative && !dec.IsZero() {
		sb.WriteByte('-')
	}
	sb.WriteString(intStr)
	if precision > 0 {
		sb.WriteByte('.')
		sb.WriteString(digitsToDecimalString(fracVec))
	}
	return sb.String()
}

// String renders n with a default precision derived from its own
// digit count, for debugging and log output.
func (n Number) String() string {
	prec := len(n.Digits) - n.Exponent
	if prec < 0 {
		prec = 0
	}
	return FormatDecimal(n, prec) + " (base " + strconv.FormatInt(n.Base, 10) + ")"
}
