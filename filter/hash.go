package filter

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	rangeTag      byte = 'r'
	comparisonTag byte = 'c'
)

// Hash returns a 64-bit hash of the filter. Equal filters always hash the same.
func (n Numeric) Hash() uint64 {
	buf := make([]byte, 0, len(n.attribute)+32)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(n.attribute)))
	buf = append(buf, n.attribute...)

	switch v := n.value.(type) {
	case Range:
		buf = append(buf, rangeTag)
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(v.Lower))
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(v.Upper))
	case Comparison:
		buf = append(buf, comparisonTag, byte(v.Operator))
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(v.Value))
	}

	if n.negated {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	return xxhash.Sum64(buf)
}

// floatBits maps -0 to +0 since they compare equal.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}
