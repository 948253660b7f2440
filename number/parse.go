package number

import (
	"regexp"
	"strconv"

	"precisely.dev/real/digit"
)

var literalPattern = regexp.MustCompile(`^([+-]?)(\d+)?(?:\.(\d+))?(?:[eE]([+-]?\d+))?$`)

// Parse reads a decimal literal (optional sign, optional integer part,
// optional fractional part, optional scientific exponent) and returns
// the Number it denotes, represented in workingBase. When workingBase
// is 10 the decimal digits are used directly; otherwise the parsed
// decimal value is converted to workingBase to the given precision of
// base-workingBase fractional digits.
func Parse(s string, workingBase int64, precision int) (Number, error) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return Number{}, &ParseError{Input: s}
	}
	negative := m[1] == "-"
	intPart, fracPart, sciPart := m[2], m[3], m[4]
	if intPart == "" && fracPart == "" {
		return Number{}, &ParseError{Input: s}
	}

	raw := make(digit.Vector, 0, len(intPart)+len(fracPart))
	for _, r := range intPart + fracPart {
		raw = append(raw, digit.Digit(r-'0'))
	}
	exp := len(intPart)
	if sciPart != "" {
		sci, err := strconv.Atoi(sciPart)
		if err != nil {
			return Number{}, &ParseError{Input: s}
		}
		exp += sci
	}
	if len(raw) == 0 {
		raw = digit.Vector{0}
	}

	dec := Number{Negative: negative, Digits: raw, Exponent: exp, Base: 10}.Normalize()
	if workingBase == 10 {
		return dec, nil
	}
	return convertBase(dec, workingBase, precision), nil
}

// ParseError reports that a string is not a well-formed real literal.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "number: invalid literal " + strconv.Quote(e.Input)
}
