package filter

import (
	"strconv"
	"strings"
)

// String renders the filter in the backend's filter expression syntax:
//
//	"price" > 10
//	"price":5 TO 10
//	NOT "price":5 TO 10
//
// The attribute is quoted verbatim, without escaping.
func (n Numeric) String() string {
	var sb strings.Builder

	if n.negated {
		sb.WriteString("NOT ")
	}

	switch v := n.value.(type) {
	case Comparison:
		sb.WriteString(quote(n.attribute))
		sb.WriteByte(' ')
		sb.WriteString(v.Operator.String())
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(v.Value))

	case Range:
		sb.WriteString(quote(n.attribute))
		sb.WriteByte(':')
		sb.WriteString(formatNumber(v.Lower))
		sb.WriteString(" TO ")
		sb.WriteString(formatNumber(v.Upper))

	default:
		// Only the zero Numeric gets here.
		return ""
	}

	return sb.String()
}

func quote(attribute string) string {
	return `"` + attribute + `"`
}

// formatNumber writes the shortest decimal that parses back to v, never using
// exponent notation, so 10 is "10" and 0.000001 is "0.000001".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
