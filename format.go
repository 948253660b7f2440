package real

import "precisely.dev/real/number"

// Format refines r to its node's maximum precision and renders its
// lower bound as a decimal string with exactly precision fractional
// digits. Since that lower bound is an exact rational, the rendering
// itself is exact; precision only controls how many fractional digits
// are shown, not how many are known.
func (r Real) Format(precision int) (string, error) {
	it, err := r.node.Begin()
	if err != nil {
		return "", wrapError(err, PrecisionExceeded, "real: "+err.Error())
	}
	for !it.AtCeiling() {
		if err := it.Advance(); err != nil {
			return "", wrapError(err, PrecisionExceeded, "real: "+err.Error())
		}
	}
	return number.FormatDecimal(it.Value().Lower, precision), nil
}

// String renders r to a default precision, for debugging and log
// output. Use Format for a caller-chosen number of fractional digits.
func (r Real) String() string {
	s, err := r.Format(defaultStringPrecision)
	if err != nil {
		return "<real: " + err.Error() + ">"
	}
	return s
}

const defaultStringPrecision = 10
