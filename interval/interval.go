// Package interval implements enclosure arithmetic (C3) over pairs of
// exact rational bounds from the number package: every operation here
// is guaranteed to return a new interval that contains the true result
// for any pair of points drawn from its operands' intervals.
package interval

import (
	"errors"

	"precisely.dev/real/number"
)

// Interval is a closed bound [Lower, Upper] with Lower <= Upper.
type Interval struct {
	Lower number.Number
	Upper number.Number
}

// ErrDivergentDivision is returned when a division's denominator
// interval contains (or touches) zero, so no enclosing quotient
// interval of finite width can be formed.
var ErrDivergentDivision = errors.New("interval: denominator interval contains zero")

// Point returns the degenerate interval [n, n].
func Point(n number.Number) Interval {
	return Interval{Lower: n, Upper: n}
}

// Width returns Upper - Lower.
func (iv Interval) Width() number.Number {
	return iv.Upper.Sub(iv.Lower)
}

// Contains reports whether n lies within [Lower, Upper], inclusive.
func (iv Interval) Contains(n number.Number) bool {
	return iv.Lower.Cmp(n) <= 0 && n.Cmp(iv.Upper) <= 0
}

// Disjoint reports whether iv and other share no point.
func (iv Interval) Disjoint(other Interval) bool {
	return iv.Upper.Cmp(other.Lower) < 0 || other.Upper.Cmp(iv.Lower) < 0
}

// Add returns an interval enclosing every a+b for a in iv, b in other.
// Addition of exact numbers is itself exact, so no rounding budget is
// needed: the result is the tightest possible enclosure.
func (iv Interval) Add(other Interval) Interval {
	return Interval{Lower: iv.Lower.Add(other.Lower), Upper: iv.Upper.Add(other.Upper)}
}

// Sub returns an interval enclosing every a-b for a in iv, b in other.
func (iv Interval) Sub(other Interval) Interval {
	return Interval{Lower: iv.Lower.Sub(other.Upper), Upper: iv.Upper.Sub(other.Lower)}
}

// Neg returns an interval enclosing every -a for a in iv.
func (iv Interval) Neg() Interval {
	return Interval{Lower: iv.Upper.Neg(), Upper: iv.Lower.Neg()}
}

// Mul returns an interval enclosing every a*b for a in iv, b in other.
// Because a*b is a bilinear function of (a, b), its extrema over the
// rectangle [iv.Lower, iv.Upper] x [other.Lower, other.Upper] always
// land on one of the rectangle's four corners, so evaluating all four
// exact products and taking their min and max is exact and tight.
func (iv Interval) Mul(other Interval) Interval {
	corners := [4]number.Number{
		iv.Lower.Mul(other.Lower),
		iv.Lower.Mul(other.Upper),
		iv.Upper.Mul(other.Lower),
		iv.Upper.Mul(other.Upper),
	}
	return Interval{Lower: minOf(corners[:]), Upper: maxOf(corners[:])}
}

// StraddlesZero reports whether iv contains or touches zero, i.e.
// whether it is unsafe to use as a division denominator.
func (iv Interval) StraddlesZero() bool {
	return iv.Lower.Sign() <= 0 && iv.Upper.Sign() >= 0
}

// Div returns an interval enclosing every a/b for a in iv, b in other,
// computed to maxPrecision significant digits beyond each quotient's
// leading digit. It returns ErrDivergentDivision if other straddles
// zero, since then no finite quotient interval can enclose every
// possible a/b (b may pass arbitrarily close to zero).
func (iv Interval) Div(other Interval, maxPrecision int) (Interval, error) {
	if other.StraddlesZero() {
		return Interval{}, ErrDivergentDivision
	}
	corners := [4][2]number.Number{
		{iv.Lower, other.Lower},
		{iv.Lower, other.Upper},
		{iv.Upper, other.Lower},
		{iv.Upper, other.Upper},
	}
	var los, his []number.Number
	for _, c := range corners {
		lo, hi, err := divBounds(c[0], c[1], maxPrecision)
		if err != nil {
			return Interval{}, err
		}
		los = append(los, lo)
		his = append(his, hi)
	}
	return Interval{Lower: minOf(los), Upper: maxOf(his)}, nil
}

// divBounds computes the ordered pair (lower, upper) of approximations
// to a/b, sound regardless of the sign of a or b.
func divBounds(a, b number.Number, maxPrecision int) (lower, upper number.Number, err error) {
	down, err := number.Div(a, b, maxPrecision, false)
	if err != nil {
		return number.Number{}, number.Number{}, err
	}
	up, err := number.Div(a, b, maxPrecision, true)
	if err != nil {
		return number.Number{}, number.Number{}, err
	}
	if down.Cmp(up) <= 0 {
		return down, up, nil
	}
	return up, down, nil
}

func minOf(ns []number.Number) number.Number {
	m := ns[0]
	for _, n := range ns[1:] {
		if n.Cmp(m) < 0 {
			m = n
		}
	}
	return m
}

func maxOf(ns []number.Number) number.Number {
	m := ns[0]
	for _, n := range ns[1:] {
		if n.Cmp(m) > 0 {
			m = n
		}
	}
	return m
}
