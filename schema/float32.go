package schema

import (
	"math"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TFloat32 is an IEEE-754 single, constrained by a range (checked only
// for finite non-zero normal values) plus special-value allow-flags
// (spec §4.2 Float32/Float64).
type TFloat32 struct {
	meta  Meta
	Range common.Range[float32]
	Flags FloatFlags
}

// NewFloat32 requires range endpoints to be normal numbers (spec §3.2).
func NewFloat32(r common.Range[float32], flags FloatFlags, meta Meta) (*TFloat32, error) {
	if classifyFloat32(r.Start) != catNegNormal && classifyFloat32(r.Start) != catPosNormal {
		return nil, common.New(common.KindStructure, "float32 range start must be a normal number")
	}
	if classifyFloat32(r.End) != catNegNormal && classifyFloat32(r.End) != catPosNormal {
		return nil, common.New(common.KindStructure, "float32 range end must be a normal number")
	}
	return &TFloat32{meta: meta, Range: r, Flags: flags}, nil
}

func classifyFloat32(v float32) floatCategory {
	bits := math.Float32bits(v)
	sign := bits >> 31
	exp := (bits >> 23) & 0xFF
	mantissa := bits & 0x7FFFFF
	switch {
	case exp == 0xFF && mantissa != 0:
		return catNaN
	case exp == 0xFF:
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

func (t *TFloat32) Validate(ctx Context) error {
	v, err := codec.ReadFloat32(ctx.Reader())
	if err != nil {
		return err
	}
	cat := classifyFloat32(v)
	needsRange, err := t.Flags.checkCategory(cat)
	if err != nil {
		return err
	}
	if needsRange && !t.Range.Contains(v) {
		return common.New(common.KindConstraint, "float32 value %v outside range [%v, %v]", v, t.Range.Start, t.Range.End)
	}
	return nil
}

func (t *TFloat32) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadFloat32(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadFloat32(r2)
	if err != nil {
		return 0, err
	}
	ca, cb := classifyFloat32(a), classifyFloat32(b)
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
		return Equal, nil
	}
}

func (t *TFloat32) TypeRefs() []*TypeRef { return nil }
func (t *TFloat32) Meta() Meta           { return t.meta }
