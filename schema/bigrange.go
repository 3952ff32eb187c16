package schema

import (
	"math/big"

	"github.com/cronosun/liquesco-go/common"
)

// BigIntRange is an inclusive [Start, End] range over arbitrary-width
// integers, used by TUInt/TSInt since their values may be up to 128 bits
// wide (spec §3.2, §9 non-goal: no support beyond 128 bits).
type BigIntRange struct {
	Start *big.Int
	End   *big.Int
}

// NewBigIntRange validates Start <= End.
func NewBigIntRange(start, end *big.Int) (BigIntRange, error) {
	if start.Cmp(end) > 0 {
		return BigIntRange{}, common.New(common.KindStructure, "range start %s is greater than end %s", start, end)
	}
	return BigIntRange{Start: start, End: end}, nil
}

// Contains reports whether v lies within the inclusive range.
func (r BigIntRange) Contains(v *big.Int) bool {
	return v.Cmp(r.Start) >= 0 && v.Cmp(r.End) <= 0
}
