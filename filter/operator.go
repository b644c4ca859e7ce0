package filter

import "fmt"

// Operator defines the relation of a comparison filter (e.g., less than, equals).
type Operator uint8

const (
	// LessThan checks if the attribute is strictly less than the value.
	LessThan Operator = iota
	// LessThanOrEqual checks if the attribute is less than or equal to the value.
	LessThanOrEqual
	// Equals checks if the attribute is equal to the value.
	Equals
	// NotEquals checks if the attribute is not equal to the value.
	NotEquals
	// GreaterThanOrEqual checks if the attribute is greater than or equal to the value.
	GreaterThanOrEqual
	// GreaterThan checks if the attribute is strictly greater than the value.
	GreaterThan
)

// Operators returns all operators in declaration order.
func Operators() []Operator {
	return []Operator{LessThan, LessThanOrEqual, Equals, NotEquals, GreaterThanOrEqual, GreaterThan}
}

// Token returns the textual token the search backend expects for the operator.
// Every operator must be listed here, otherwise it would render as garbage.
func (o Operator) Token() string {
	switch o {
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case GreaterThanOrEqual:
		return ">="
	case GreaterThan:
		return ">"
	default:
		return ""
	}
}

func (o Operator) String() string {
	if t := o.Token(); t != "" {
		return t
	}
	return fmt.Sprintf("Operator(%d)", uint8(o))
}

// Valid reports whether o is one of the declared operators.
func (o Operator) Valid() bool {
	return o.Token() != ""
}

// ParseOperator returns the operator for the given token.
func ParseOperator(token string) (Operator, error) {
	for _, o := range Operators() {
		if o.Token() == token {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unsupported operator: %q", token)
}
