package filter

// Value is the payload of a numeric filter.
// It uses a private marker method so only Range and Comparison can be used,
// which makes it a closed sum type.
type Value interface {
	numericValue()
}

// Range matches attribute values inside the inclusive interval [Lower, Upper].
// Lower is expected to be less than or equal to Upper. It is not reordered.
type Range struct {
	Lower float64
	Upper float64
}

func (Range) numericValue() {}

// Comparison matches attribute values that satisfy `attribute Operator Value`.
type Comparison struct {
	Operator Operator
	Value    float64
}

func (Comparison) numericValue() {}

// Numeric is a filter restricting results by a numeric attribute.
//
// Attribute and value are fixed at construction. Negation can be toggled later
// by whatever owns the filter. Numeric is comparable, so == and map keys
// compare all three fields.
type Numeric struct {
	attribute string
	value     Value
	negated   bool
}

// Option configures a Numeric at construction.
type Option func(*Numeric)

// Negated makes the constructed filter negated.
func Negated() Option {
	return func(n *Numeric) {
		n.negated = true
	}
}

// NewRange creates a filter matching attribute values between lower and upper (inclusive).
func NewRange(attribute string, lower, upper float64, opts ...Option) Numeric {
	return newNumeric(attribute, Range{Lower: lower, Upper: upper}, opts)
}

// NewComparison creates a filter matching attribute values that compare to value with op.
func NewComparison(attribute string, op Operator, value float64, opts ...Option) Numeric {
	return newNumeric(attribute, Comparison{Operator: op, Value: value}, opts)
}

func newNumeric(attribute string, value Value, opts []Option) Numeric {
	n := Numeric{attribute: attribute, value: value}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

func (n Numeric) Attribute() string {
	return n.attribute
}

// Value returns either a Range or a Comparison. It is nil only for the zero Numeric.
func (n Numeric) Value() Value {
	return n.value
}

func (n Numeric) IsNegated() bool {
	return n.negated
}

// SetNegated sets the negation flag in place.
func (n *Numeric) SetNegated(negated bool) {
	n.negated = negated
}

// Negate flips the negation flag in place.
func (n *Numeric) Negate() {
	n.negated = !n.negated
}

// Equal reports whether n and other have the same attribute, value and negation.
func (n Numeric) Equal(other Numeric) bool {
	return n == other
}
