package real

// compareToZero refines diff until its enclosure proves it strictly
// negative, strictly positive, or exactly zero, returning -1, 1, or 0
// respectively. If neither can be proven before the ceiling is
// reached (the difference's enclosure still straddles zero without
// having collapsed to the point zero), it returns PrecisionExceeded:
// equality and ordering of general lazily-defined reals is only
// semi-decidable, and this is the only honest answer left once
// refinement budget runs out.
func compareToZero(diff Real) (int, error) {
	it, err := diff.node.Begin()
	if err != nil {
		return 0, wrapError(err, PrecisionExceeded, "real: "+err.Error())
	}
	for {
		iv := it.Value()
		switch {
		case iv.Upper.Sign() < 0:
			return -1, nil
		case iv.Lower.Sign() > 0:
			return 1, nil
		case iv.Lower.Cmp(iv.Upper) == 0 && iv.Lower.IsZero():
			return 0, nil
		}
		if err := it.Advance(); err != nil {
			return 0, wrapError(err, PrecisionExceeded, "real: "+err.Error())
		}
	}
}

// Equal reports whether a and b are provably equal.
func Equal(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// NotEqual reports whether a and b are provably distinct.
func NotEqual(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c != 0, nil
}

// Less reports whether a is provably strictly less than b.
func Less(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessEqual reports whether a is provably less than or equal to b.
func LessEqual(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether a is provably strictly greater than b.
func Greater(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterEqual reports whether a is provably greater than or equal to b.
func GreaterEqual(a, b Real) (bool, error) {
	c, err := compareToZero(Sub(a, b))
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}
