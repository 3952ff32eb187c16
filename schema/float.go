package schema

import "github.com/cronosun/liquesco-go/common"

// floatCategory classifies a decoded float for the purposes of both
// validation (spec §4.2: "only finite non-zero normal values are
// range-checked") and the total comparison order (spec §9: "derived
// from bit patterns, not IEEE semantics"). Values below are in the
// exact rank order of that total order.
type floatCategory int

const (
	catNaN floatCategory = iota
	catNegInf
	catNegNormal
	catNegSubnormal
	catNegZero
	catPosZero
	catPosSubnormal
	catPosNormal
	catPosInf
)

// FloatFlags are the six independent allow-flags controlling which
// special values pass validation regardless of the declared range
// (spec §4.2 Float32/Float64).
type FloatFlags struct {
	PositiveZero     bool
	NegativeZero     bool
	NaN              bool
	PositiveInfinity bool
	NegativeInfinity bool
	Subnormal        bool
}

// checkCategory applies the allow-flags to a classified, non-rangeable
// value. It returns (rangeCheckNeeded=false, err) for every category
// except the two "normal, non-zero" ones, which the caller must still
// range-check.
func (f FloatFlags) checkCategory(cat floatCategory) (rangeCheckNeeded bool, err error) {
	switch cat {
	case catNaN:
		if !f.NaN {
			return false, common.New(common.KindConstraint, "NaN not allowed by this float type")
		}
		return false, nil
	case catNegInf:
		if !f.NegativeInfinity {
			return false, common.New(common.KindConstraint, "negative infinity not allowed by this float type")
		}
		return false, nil
	case catPosInf:
		if !f.PositiveInfinity {
			return false, common.New(common.KindConstraint, "positive infinity not allowed by this float type")
		}
		return false, nil
	case catNegZero:
		if !f.NegativeZero {
			return false, common.New(common.KindConstraint, "negative zero not allowed by this float type")
		}
		return false, nil
	case catPosZero:
		if !f.PositiveZero {
			return false, common.New(common.KindConstraint, "positive zero not allowed by this float type")
		}
		return false, nil
	case catNegSubnormal, catPosSubnormal:
		if !f.Subnormal {
			return false, common.New(common.KindConstraint, "subnormal values not allowed by this float type")
		}
		return false, nil
	default: // catNegNormal, catPosNormal
		return true, nil
	}
}
