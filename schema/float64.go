package schema

import (
	"math"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TFloat64 is an IEEE-754 double, constrained by a range (checked only
// for finite non-zero normal values) plus special-value allow-flags
// (spec §4.2 Float32/Float64).
type TFloat64 struct {
	meta  Meta
	Range common.Range[float64]
	Flags FloatFlags
}

// NewFloat64 requires range endpoints to be normal numbers (spec §3.2).
func NewFloat64(r common.Range[float64], flags FloatFlags, meta Meta) (*TFloat64, error) {
	if classifyFloat64(r.Start) != catNegNormal && classifyFloat64(r.Start) != catPosNormal {
		return nil, common.New(common.KindStructure, "float64 range start must be a normal number")
	}
	if classifyFloat64(r.End) != catNegNormal && classifyFloat64(r.End) != catPosNormal {
		return nil, common.New(common.KindStructure, "float64 range end must be a normal number")
	}
	return &TFloat64{meta: meta, Range: r, Flags: flags}, nil
}

func classifyFloat64(v float64) floatCategory {
	bits := math.Float64bits(v)
	sign := bits >> 63
	exp := (bits >> 52) & 0x7FF
	mantissa := bits & 0xFFFFFFFFFFFFF
	switch {
	case exp == 0x7FF && mantissa != 0:
		return catNaN
	case exp == 0x7FF:
		if sign == 1 {
			return catNegInf
		}
		return catPosInf
	case exp == 0 && mantissa == 0:
		if sign == 1 {
			return catNegZero
		}
		return catPosZero
	case exp == 0:
		if sign == 1 {
			return catNegSubnormal
		}
		return catPosSubnormal
	default:
		if sign == 1 {
			return catNegNormal
		}
		return catPosNormal
	}
}

func (t *TFloat64) Validate(ctx Context) error {
	v, err := codec.ReadFloat64(ctx.Reader())
	if err != nil {
		return err
	}
	cat := classifyFloat64(v)
	needsRange, err := t.Flags.checkCategory(cat)
	if err != nil {
		return err
	}
	if needsRange && !t.Range.Contains(v) {
		return common.New(common.KindConstraint, "float64 value %v outside range [%v, %v]", v, t.Range.Start, t.Range.End)
	}
	return nil
}

func (t *TFloat64) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadFloat64(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadFloat64(r2)
	if err != nil {
		return 0, err
	}
	ca, cb := classifyFloat64(a), classifyFloat64(b)
	if ca != cb {
		if ca < cb {
			return Less, nil
		}
		return Greater, nil
	}
	switch ca {
	case catNegNormal, catNegSubnormal, catPosSubnormal, catPosNormal:
		if a < b {
			return Less, nil
		} else if a > b {
			return Greater, nil
		}
		return Equal, nil
	default:
		// NaN, +-0, +-Inf are singleton categories: same category means equal.
		return Equal, nil
	}
}

func (t *TFloat64) TypeRefs() []*TypeRef { return nil }
func (t *TFloat64) Meta() Meta           { return t.meta }
