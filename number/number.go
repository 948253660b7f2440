// Package number implements the exact number type (C2): a sign, a
// base-β digit vector, and an exponent, together with the signed
// arithmetic operators that dispatch onto the digit package's
// magnitude-only primitives.
package number

import (
	"fmt"

	"precisely.dev/real/digit"
)

// Number is sign · (0.d0 d1 ... d(n-1))_base · base^Exponent.
type Number struct {
	Negative bool
	Digits   digit.Vector
	Exponent int
	Base     int64
}

// Zero returns the canonical zero of the given base.
func Zero(base int64) Number {
	return Number{Digits: digit.Vector{0}, Exponent: 0, Base: base}
}

// IsZero reports whether n represents zero.
func (n Number) IsZero() bool {
	return digit.IsZero(n.Digits)
}

// Sign returns -1, 0, or 1.
func (n Number) Sign() int {
	if n.IsZero() {
		return 0
	}
	if n.Negative {
		return -1
	}
	return 1
}

// Abs returns |n|.
func (n Number) Abs() Number {
	n.Negative = false
	return n
}

// Neg returns -n. Zero's sign is always positive, matching the
// canonical normal form.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}
	n.Negative = !n.Negative
	return n
}

// Normalize enforces the kernel's invariants: the leading digit is
// nonzero unless the vector has a single digit, the trailing digit is
// nonzero unless the vector has a single digit, and the unique normal
// form of zero is (+, [0], 0).
func (n Number) Normalize() Number {
	d, leadRemoved := digit.TrimLeading(n.Digits)
	d, _ = digit.TrimTrailing(d)
	exp := n.Exponent - leadRemoved
	if digit.IsZero(d) {
		return Number{Digits: digit.Vector{0}, Exponent: 0, Base: n.Base}
	}
	return Number{Negative: n.Negative, Digits: d, Exponent: exp, Base: n.Base}
}

// NormalizeLeft enforces only the leading-zero rule, leaving trailing
// zeros (and their exponent) untouched. Nothing in this module calls
// it; Div and the arithmetic operators use Normalize.
func (n Number) NormalizeLeft() Number {
	d, leadRemoved := digit.TrimLeading(n.Digits)
	if digit.IsZero(d) {
		return Number{Digits: digit.Vector{0}, Exponent: 0, Base: n.Base}
	}
	return Number{Negative: n.Negative, Digits: d, Exponent: n.Exponent - leadRemoved, Base: n.Base}
}

// TruncateBounds implements the literal refinement rule of C4 (spec
// §4.4): at precision step n, lower is n's magnitude truncated to its
// first n digits and upper is lower plus one unit in the last kept
// place (β^(exponent-n)); Number.Add's own carry chain naturally
// absorbs the "trailing (β−1) digits carry into upper" case spec §4.4
// calls out, so no special case is needed here. Once n reaches or
// passes the digit count actually known, the value is exact and lower
// equals upper. The pair is sign-adjusted so Lower <= Upper always
// holds: for a negative n, truncating toward zero yields the *larger*
// (less negative) bound, so the truncated magnitude becomes Upper and
// the widened magnitude becomes Lower.
func TruncateBounds(n Number, precision int) (lower, upper Number) {
	mag := n.Abs()
	if precision < 0 {
		precision = 0
	}
	if precision >= len(mag.Digits) {
		exact := mag.Normalize()
		if n.Negative && !exact.IsZero() {
			return exact.Neg(), exact.Neg()
		}
		return exact, exact
	}
	truncated := append(digit.Vector{}, mag.Digits[:precision]...)
	if len(truncated) == 0 {
		truncated = digit.Vector{0}
	}
	lowerMag := Number{Digits: truncated, Exponent: mag.Exponent, Base: mag.Base}.Normalize()
	epsilon := Number{Digits: digit.Vector{1}, Exponent: mag.Exponent - precision + 1, Base: mag.Base}
	upperMag := lowerMag.Add(epsilon)
	if !n.Negative {
		return lowerMag, upperMag
	}
	return upperMag.Neg(), lowerMag.Neg()
}

func sameBase(a, b Number) {
	if a.Base != b.Base {
		panic(fmt.Sprintf("number: mismatched base %d vs %d", a.Base, b.Base))
	}
}

// magLess reports whether |a| < |b|.
func magLess(a, b Number) bool {
	pa, pb, _ := alignExport(a.Digits, a.Exponent, b.Digits, b.Exponent)
	return digit.AlignedLess(pa, pb, true)
}

// magEqual reports whether |a| == |b|.
func magEqual(a, b Number) bool {
	return !magLess(a, b) && !magLess(b, a)
}

// Cmp returns -1, 0, or 1 as n compares to o, honoring sign: for
// same-sign positive numbers the usual magnitude order applies; for
// same-sign negative numbers the bound with the larger magnitude is the
// lesser value.
func (n Number) Cmp(o Number) int {
	sameBase(n, o)
	ns, os := n.Sign(), o.Sign()
	if ns != os {
		if ns < os {
			return -1
		}
		return 1
	}
	if ns == 0 {
		return 0
	}
	switch {
	case magEqual(n, o):
		return 0
	case ns > 0:
		if magLess(n, o) {
			return -1
		}
		return 1
	default: // both negative: larger magnitude is lesser
		if magLess(n, o) {
			return 1
		}
		return -1
	}
}

// Add returns n + o.
func (n Number) Add(o Number) Number {
	sameBase(n, o)
	if n.Negative == o.Negative {
		d, e := digit.Add(n.Digits, n.Exponent, o.Digits, o.Exponent, n.Base)
		return Number{Negative: n.Negative, Digits: d, Exponent: e, Base: n.Base}.Normalize()
	}
	// opposite signs: subtract the smaller magnitude from the larger,
	// keep the sign of the larger.
	if magLess(n, o) {
		d, e := digit.Sub(o.Digits, o.Exponent, n.Digits, n.Exponent, n.Base)
		return Number{Negative: o.Negative, Digits: d, Exponent: e, Base: n.Base}.Normalize()
	}
	d, e := digit.Sub(n.Digits, n.Exponent, o.Digits, o.Exponent, n.Base)
	return Number{Negative: n.Negative, Digits: d, Exponent: e, Base: n.Base}.Normalize()
}

// Sub returns n - o.
func (n Number) Sub(o Number) Number {
	return n.Add(o.Neg())
}

// Mul returns n * o.
func (n Number) Mul(o Number) Number {
	sameBase(n, o)
	d, e := digit.Mul(n.Digits, n.Exponent, o.Digits, o.Exponent, n.Base)
	return Number{Negative: n.Negative != o.Negative, Digits: d, Exponent: e, Base: n.Base}.Normalize()
}

// alignExport mirrors digit's internal align helper; it is small enough
// to keep local to this package rather than exporting align from digit.
func alignExport(a digit.Vector, aExp int, b digit.Vector, bExp int) (pa, pb digit.Vector, exp int) {
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
	pa = make(digit.Vector, total)
	pb = make(digit.Vector, total)
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
