package filter

import (
	"fmt"
	"math"

	"github.com/thisisjab/numfilter/fault"
)

// Validate reports problems the backend would reject or silently treat as an
// empty match. Constructors never call it; inverted ranges render as given.
func (n Numeric) Validate() error {
	problems := fault.FieldErrorsMetadata{}

	if n.attribute == "" {
		problems["attribute"] = append(problems["attribute"], "Field is required.")
	}

	switch v := n.value.(type) {
	case Range:
		if !isFinite(v.Lower) {
			problems["lower"] = append(problems["lower"], "Value must be a finite number.")
		}
		if !isFinite(v.Upper) {
			problems["upper"] = append(problems["upper"], "Value must be a finite number.")
		}
		if v.Lower > v.Upper {
			problems["range"] = append(problems["range"], fmt.Sprintf("Lower bound %s is greater than upper bound %s.", formatNumber(v.Lower), formatNumber(v.Upper)))
		}
	case Comparison:
		if !v.Operator.Valid() {
			problems["operator"] = append(problems["operator"], fmt.Sprintf("Unsupported operator %v.", v.Operator))
		}
		if !isFinite(v.Value) {
			problems["value"] = append(problems["value"], "Value must be a finite number.")
		}
	default:
		problems["value"] = append(problems["value"], "Field is required.")
	}

	if len(problems) > 0 {
		return fault.New(fault.BadInputCode, "").WithMetadata(problems)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
