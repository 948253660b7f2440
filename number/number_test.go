package number

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, base int64, precision int) Number {
	t.Helper()
	n, err := Parse(s, base, precision)
	require.NoError(t, err)
	return n
}

func TestParseBasic(t *testing.T) {
	n := mustParse(t, "15", 10, 0)
	require.Equal(t, Number{Digits: []uint64{1, 5}, Exponent: 2, Base: 10}, n)

	n = mustParse(t, "-0.5", 10, 0)
	require.True(t, n.Negative)
	require.Equal(t, FormatDecimal(n, 1), "-0.5")

	n = mustParse(t, "1.19", 10, 0)
	require.Equal(t, "1.19", FormatDecimal(n, 2))

	n = mustParse(t, "1.5e2", 10, 0)
	require.Equal(t, "150", FormatDecimal(n, 0))

	_, err := Parse("not-a-number", 10, 0)
	require.Error(t, err)

	_, err = Parse(".", 10, 0)
	require.Error(t, err)
}

func TestAddSub(t *testing.T) {
	a := mustParse(t, "15", 10, 0)
	b := mustParse(t, "15", 10, 0)
	sum := a.Add(b)
	require.Equal(t, "30", FormatDecimal(sum, 0))

	c := mustParse(t, "-15", 10, 0)
	require.Equal(t, "0", FormatDecimal(a.Add(c), 0))

	d := mustParse(t, "20", 10, 0)
	diff := d.Sub(a)
	require.Equal(t, "5", FormatDecimal(diff, 0))

	diff2 := a.Sub(d)
	require.True(t, diff2.Negative)
	require.Equal(t, "-5", FormatDecimal(diff2, 0))
}

func TestMul(t *testing.T) {
	a := mustParse(t, "12", 10, 0)
	b := mustParse(t, "12", 10, 0)
	require.Equal(t, "144", FormatDecimal(a.Mul(b), 0))

	neg := mustParse(t, "-12", 10, 0)
	require.True(t, neg.Mul(b).Negative)
}

func TestCmp(t *testing.T) {
	a := mustParse(t, "1.5", 10, 0)
	b := mustParse(t, "1.50", 10, 0)
	require.Equal(t, 0, a.Cmp(b))

	c := mustParse(t, "2", 10, 0)
	require.Equal(t, -1, a.Cmp(c))
	require.Equal(t, 1, c.Cmp(a))

	negSmall := mustParse(t, "-1", 10, 0)
	negBig := mustParse(t, "-5", 10, 0)
	require.Equal(t, -1, negBig.Cmp(negSmall))
	require.Equal(t, 1, negSmall.Cmp(negBig))
}

func TestConvertBaseRoundTrip(t *testing.T) {
	dec := mustParse(t, "255.5", 10, 0)
	hex := convertBase(dec, 16, 20)
	require.Equal(t, int64(16), hex.Base)

	back := convertBase(hex, 10, 20)
	require.Equal(t, "255.5", FormatDecimal(back, 1))
}

func TestDivExact(t *testing.T) {
	a := mustParse(t, "144", 10, 0)
	b := mustParse(t, "12", 10, 0)
	q, err := Div(a, b, 5, false)
	require.NoError(t, err)
	require.Equal(t, "12", FormatDecimal(q, 0))

	qUp, err := Div(a, b, 5, true)
	require.NoError(t, err)
	require.Equal(t, 0, q.Cmp(qUp))
}

func TestDivApproximateBrackets(t *testing.T) {
	ten := mustParse(t, "10", 10, 0)
	three := mustParse(t, "3", 10, 0)

	lower, err := Div(ten, three, 4, false)
	require.NoError(t, err)
	upper, err := Div(ten, three, 4, true)
	require.NoError(t, err)

	require.True(t, lower.Cmp(upper) <= 0)
	require.True(t, lower.Mul(three).Cmp(ten) <= 0)
	require.True(t, upper.Mul(three).Cmp(ten) >= 0)
}

func TestTruncateBounds(t *testing.T) {
	// "1.19" has three known digits (base 10): step 1 only commits to
	// the leading digit, step 2 to the first two, step 3 is exact.
	v := mustParse(t, "1.19", 10, 0)

	lower, upper := TruncateBounds(v, 1)
	require.Equal(t, "1", FormatDecimal(lower, 0))
	require.Equal(t, "2", FormatDecimal(upper, 0))

	lower, upper = TruncateBounds(v, 2)
	require.Equal(t, "1.1", FormatDecimal(lower, 1))
	require.Equal(t, "1.2", FormatDecimal(upper, 1))

	lower, upper = TruncateBounds(v, 3)
	require.Equal(t, 0, lower.Cmp(upper))
	require.Equal(t, "1.19", FormatDecimal(lower, 2))

	lower, upper = TruncateBounds(v, 10)
	require.Equal(t, 0, lower.Cmp(upper))
}

func TestTruncateBoundsCarriesPastLeadingDigit(t *testing.T) {
	// "0.99" truncated to its first digit is "0.9", and one unit in
	// that place carries the leading digit: upper must be 1, not 0.10.
	v := mustParse(t, "0.99", 10, 0)
	lower, upper := TruncateBounds(v, 1)
	require.Equal(t, "0.9", FormatDecimal(lower, 1))
	require.Equal(t, "1", FormatDecimal(upper, 0))
	require.True(t, lower.Cmp(upper) <= 0)
}

func TestTruncateBoundsNegative(t *testing.T) {
	// Truncating a negative value toward zero yields the larger
	// (less negative) bound, so it must land in Upper, not Lower.
	v := mustParse(t, "-1.19", 10, 0)
	lower, upper := TruncateBounds(v, 1)
	require.True(t, lower.Cmp(upper) <= 0)
	require.Equal(t, "-2", FormatDecimal(lower, 0))
	require.Equal(t, "-1", FormatDecimal(upper, 0))

	lower, upper = TruncateBounds(v, 3)
	require.Equal(t, 0, lower.Cmp(upper))
	require.Equal(t, "-1.19", FormatDecimal(lower, 2))
}

func TestDivByZero(t *testing.T) {
	a := mustParse(t, "1", 10, 0)
	z := Zero(int64(10))
	_, err := Div(a, z, 5, false)
	require.ErrorIs(t, err, ErrDivideByZero)
}
