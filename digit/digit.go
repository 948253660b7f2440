// Package digit implements the base-β digit-vector primitives that the
// rest of the kernel builds on: comparison, addition, subtraction,
// multiplication, division-by-a-scalar, and rounding. Every function
// takes the base β explicitly rather than fixing it at compile time,
// since a single Go build may host several instantiations (β=10 for the
// decimal parse/format path, a much larger β for the working
// representation).
package digit

import "fmt"

// Digit is a single base-β digit, 0 <= Digit < β.
type Digit = uint64

// Vector is an ordered sequence of digits, highest-order first. Both the
// empty vector and []Digit{0} denote zero; normalize (see package number)
// collapses every representation of zero to []Digit{0}.
type Vector []Digit

// MaxBase is the largest base a Vector may use. It is chosen so that
// β*β plus the carries accumulated by Mul's inner loop never overflow a
// uint64 accumulator.
const MaxBase = 1 << 31

// ValidBase reports whether base is usable as a digit-vector radix.
func ValidBase(base int64) bool {
	return base >= 2 && base <= MaxBase
}

// Zero returns the canonical zero vector.
func Zero() Vector { return Vector{0} }

// IsZero reports whether every digit in v is zero.
func IsZero(v Vector) bool {
	for _, d := range v {
		if d != 0 {
			return false
		}
	}
	return true
}

func allZero(v Vector) bool { return IsZero(v) }

// TrimLeading drops leading zero digits, always leaving at least one
// digit, and reports how many were removed.
func TrimLeading(v Vector) (Vector, int) {
	i := 0
	for i < len(v)-1 && v[i] == 0 {
		i++
	}
	return v[i:], i
}

// TrimTrailing drops trailing zero digits, always leaving at least one
// digit, and reports how many were removed.
func TrimTrailing(v Vector) (Vector, int) {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return v[:n], len(v) - n
}

// AlignedLess compares two digit vectors that share a unit weight at
// index 0 (i.e. have already been aligned by a caller, or happen to
// start at the same position). It walks both prefixes until a
// differing digit or until one vector is exhausted; a vector that runs
// out first compares less only if the remaining digits of the other are
// not all zero (a vector with only trailing zeros left has the same
// value as if it had ended there too).
//
// strict selects whether an exact tie should count as "less": with
// strict true, AlignedLess implements "<" (a tie is false); with strict
// false it implements "<=" (a tie is true).
func AlignedLess(a, b Vector, strict bool) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	if i < n {
		return a[i] < b[i]
	}
	switch {
	case len(a) == len(b):
		return !strict
	case len(a) < len(b):
		if allZero(b[i:]) {
			return !strict
		}
		return true
	default: // len(a) > len(b)
		if allZero(a[i:]) {
			return !strict
		}
		return false
	}
}

// Compare returns -1, 0, or 1 as the aligned vectors a, b compare.
func Compare(a, b Vector) int {
	if AlignedLess(a, b, true) {
		return -1
	}
	if AlignedLess(b, a, true) {
		return 1
	}
	return 0
}

// align pads a and b with zeros on both ends so that index 0 of each
// padded vector shares the same unit weight, and returns that common
// weight expressed as the exponent a Number built from the padded
// vector would carry (weight(j) = exponent-1-j).
func align(a Vector, aExp int, b Vector, bExp int) (pa, pb Vector, exp int) {
	la, lb := len(a), len(b)
	maxWA, minWA := aExp-1, aExp-la
	maxWB, minWB := bExp-1, bExp-lb
	maxW := maxWA
	if maxWB > maxW {
		maxW = maxWB
	}
	minW := minWA
	if minWB < minW {
		minW = minWB
	}
	total := maxW - minW + 1
	pa = make(Vector, total)
	pb = make(Vector, total)
	for j := 0; j < total; j++ {
		w := maxW - j
		if w >= minWA && w <= maxWA {
			pa[j] = a[maxWA-w]
		}
		if w >= minWB && w <= maxWB {
			pb[j] = b[maxWB-w]
		}
	}
	return pa, pb, maxW + 1
}

// Add aligns a and b to a common unit weight and adds them, walking from
// least to most significant digit and propagating carry. A final carry
// grows the result by one leading digit and increments its exponent.
func Add(a Vector, aExp int, b Vector, bExp int, base int64) (Vector, int) {
	pa, pb, exp := align(a, aExp, b, bExp)
	n := len(pa)
	result := make(Vector, n)
	carry := Digit(0)
	bb := Digit(base)
	for j := n - 1; j >= 0; j-- {
		s := pa[j] + pb[j] + carry
		if s >= bb {
			s -= bb
			carry = 1
		} else {
			carry = 0
		}
		result[j] = s
	}
	if carry == 1 {
		result = append(Vector{1}, result...)
		exp++
	}
	return result, exp
}

// Sub aligns a and b and subtracts b from a, walking least to most
// significant digit with a single borrow chain. The caller must ensure
// the aligned magnitude of a is >= that of b; Sub does not re-check
// signs, it only combines magnitudes.
func Sub(a Vector, aExp int, b Vector, bExp int, base int64) (Vector, int) {
	pa, pb, exp := align(a, aExp, b, bExp)
	n := len(pa)
	result := make(Vector, n)
	borrow := Digit(0)
	bb := Digit(base)
	for j := n - 1; j >= 0; j-- {
		rhs := pb[j] + borrow
		if pa[j] < rhs {
			result[j] = pa[j] + bb - rhs
			borrow = 1
		} else {
			result[j] = pa[j] - rhs
			borrow = 0
		}
	}
	return result, exp
}

// Mul computes the schoolbook product of a and b, returning the raw
// (untrimmed) digit vector of length len(a)+len(b) and the exponent that
// makes it represent a*b exactly; when either operand is zero it returns
// Vector{0} with exponent 0 instead. Callers normalize the result to
// strip leading/trailing zeros.
func Mul(a Vector, aExp int, b Vector, bExp int, base int64) (Vector, int) {
	la, lb := len(a), len(b)
	if IsZero(a) || IsZero(b) {
		return Vector{0}, 0
	}
	bb := Digit(base)
	res := make(Vector, la+lb)
	n := len(res)
	for i := 0; i < la; i++ {
		ai := a[la-1-i]
		if ai == 0 {
			continue
		}
		carry := Digit(0)
		for j := 0; j < lb; j++ {
			bj := b[lb-1-j]
			idx := n - 1 - (i + j)
			prod := ai*bj + res[idx] + carry
			res[idx] = prod % bb
			carry = prod / bb
		}
		k := n - 1 - (i + lb)
		for carry > 0 && k >= 0 {
			s := res[k] + carry
			res[k] = s % bb
			carry = s / bb
			k--
		}
	}
	fracA := la - aExp
	fracB := lb - bExp
	exp := n - fracA - fracB
	return res, exp
}

// DivModSmall divides the vector dividend (interpreted as a base-`base`
// integer, most significant digit first) by the scalar divisor,
// returning a quotient of the same length (with possible leading zeros)
// and the remainder. It is schoolbook short division: one output digit
// per input digit, each computed from the running remainder with a
// native int64 divide.
func DivModSmall(dividend Vector, base, divisor int64) (quotient Vector, remainder int64) {
	if divisor == 0 {
		panic(fmt.Sprintf("digit: DivModSmall by zero divisor"))
	}
	quotient = make(Vector, len(dividend))
	rem := int64(0)
	for i, d := range dividend {
		cur := rem*base + int64(d)
		quotient[i] = Digit(cur / divisor)
		rem = cur % divisor
	}
	return quotient, rem
}

// RoundUp increments the least-significant digit of v with full carry
// propagation, as if adding one unit in the last place. It reports
// whether the increment carried out past the leading digit (in which
// case the returned vector is one digit longer and the caller must
// increment the corresponding exponent).
func RoundUp(v Vector, base int64) (Vector, bool) {
	result := make(Vector, len(v))
	copy(result, v)
	bb := Digit(base)
	carry := true
	for i := len(result) - 1; i >= 0 && carry; i-- {
		result[i]++
		if result[i] >= bb {
			result[i] = 0
		} else {
			carry = false
		}
	}
	if carry {
		result = append(Vector{1}, result...)
	}
	return result, carry
}

// RoundDown decrements the least-significant digit of v with full
// borrow propagation. The caller must ensure v is strictly positive;
// rounding down zero is undefined.
func RoundDown(v Vector, base int64) Vector {
	result := make(Vector, len(v))
	copy(result, v)
	bb := Digit(base)
	borrow := true
	for i := len(result) - 1; i >= 0 && borrow; i-- {
		if result[i] == 0 {
			result[i] = bb - 1
		} else {
			result[i]--
			borrow = false
		}
	}
	return result
}
