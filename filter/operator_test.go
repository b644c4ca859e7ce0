package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator_Token(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{LessThan, "<"},
		{LessThanOrEqual, "<="},
		{Equals, "="},
		{NotEquals, "!="},
		{GreaterThanOrEqual, ">="},
		{GreaterThan, ">"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Token())
			assert.Equal(t, tt.want, tt.op.String())
			assert.True(t, tt.op.Valid())
		})
	}
}

func TestOperator_Unknown(t *testing.T) {
	op := Operator(42)

	assert.False(t, op.Valid())
	assert.Empty(t, op.Token())
	assert.Equal(t, "Operator(42)", op.String())
}

func TestOperators(t *testing.T) {
	ops := Operators()
	require.Len(t, ops, 6)

	tokens := map[string]bool{}
	for _, op := range ops {
		tokens[op.Token()] = true
	}
	assert.Len(t, tokens, 6)
}

func TestParseOperator(t *testing.T) {
	for _, op := range Operators() {
		got, err := ParseOperator(op.Token())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	for _, bad := range []string{"", "==", "=<", "IN", " >"} {
		_, err := ParseOperator(bad)
		assert.Error(t, err, "token %q", bad)
	}
}
