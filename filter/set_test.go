package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Deduplicates(t *testing.T) {
	s := NewSet(
		NewComparison("price", GreaterThan, 10),
		NewRange("rating", 1, 5),
		NewComparison("price", GreaterThan, 10),
	)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{`"price" > 10`, `"rating":1 TO 5`}, s.Strings())

	assert.False(t, s.Add(NewRange("rating", 1, 5)))
	assert.True(t, s.Add(NewRange("rating", 1, 5, Negated())))
	assert.Equal(t, 3, s.Len())
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set

	assert.False(t, s.Contains(NewRange("a", 1, 2)))
	assert.False(t, s.Remove(NewRange("a", 1, 2)))
	assert.True(t, s.Add(NewRange("a", 1, 2)))
	assert.True(t, s.Contains(NewRange("a", 1, 2)))
}

func TestSet_Remove(t *testing.T) {
	a := NewComparison("a", Equals, 1)
	b := NewComparison("b", Equals, 2)
	c := NewComparison("c", Equals, 3)

	s := NewSet(a, b, c)

	assert.True(t, s.Remove(b))
	assert.False(t, s.Remove(b))
	assert.False(t, s.Contains(b))
	assert.Equal(t, []Numeric{a, c}, s.Filters())

	// Indexes of later filters must follow the removal.
	assert.True(t, s.Remove(c))
	assert.Equal(t, []Numeric{a}, s.Filters())
	assert.True(t, s.Add(b))
	assert.Equal(t, []Numeric{a, b}, s.Filters())
}

func TestSet_NegationChangesIdentity(t *testing.T) {
	f := NewRange("price", 5, 10)
	s := NewSet(f)

	f.Negate()
	assert.False(t, s.Contains(f))

	f.Negate()
	assert.True(t, s.Contains(f))
}

func TestSet_FiltersReturnsCopy(t *testing.T) {
	s := NewSet(NewRange("a", 1, 2))

	out := s.Filters()
	out[0] = NewRange("b", 3, 4)

	assert.Equal(t, []string{`"a":1 TO 2`}, s.Strings())
}
