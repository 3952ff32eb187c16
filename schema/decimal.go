package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TDecimal constrains a normalized Decimal (spec §3.2, §4.2): the wire
// value must already be normalized, and then three independent ranges
// apply to the decimal's value, its coefficient and its exponent.
type TDecimal struct {
	meta             Meta
	ValueMin         common.Decimal
	ValueMax         common.Decimal
	CoefficientRange BigIntRange
	ExponentRange    common.Range[int8]
}

// NewDecimal builds a TDecimal. valueMin/valueMax bound the decoded
// decimal's value; coefficientRange and exponentRange bound its raw
// parts.
func NewDecimal(valueMin, valueMax common.Decimal, coefficientRange BigIntRange, exponentRange common.Range[int8], meta Meta) (*TDecimal, error) {
	if valueMin.Cmp(valueMax) > 0 {
		return nil, common.New(common.KindStructure, "decimal value range start is greater than end")
	}
	return &TDecimal{
		meta:             meta,
		ValueMin:         valueMin,
		ValueMax:         valueMax,
		CoefficientRange: coefficientRange,
		ExponentRange:    exponentRange,
	}, nil
}

func (t *TDecimal) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	coefficient, exponent, err := codec.ReadDecimal(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { w.WriteDecimal(coefficient, exponent) }); err != nil {
		return err
	}
	value := common.FromPartsDenormalized(coefficient, exponent)
	if !value.IsNormalized() {
		return common.New(common.KindStructure, "decimal (%s, %d) is not normalized", coefficient, exponent)
	}
	if value.Cmp(t.ValueMin) < 0 || value.Cmp(t.ValueMax) > 0 {
		return common.New(common.KindConstraint, "decimal value out of range")
	}
	if !t.CoefficientRange.Contains(coefficient) {
		return common.New(common.KindConstraint, "decimal coefficient %s out of range", coefficient)
	}
	if !t.ExponentRange.Contains(exponent) {
		return common.New(common.KindConstraint, "decimal exponent %d out of range", exponent)
	}
	return nil
}

func (t *TDecimal) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	c1, e1, err := codec.ReadDecimal(r1)
	if err != nil {
		return 0, err
	}
	c2, e2, err := codec.ReadDecimal(r2)
	if err != nil {
		return 0, err
	}
	a := common.FromPartsDenormalized(c1, e1)
	b := common.FromPartsDenormalized(c2, e2)
	return a.Cmp(b), nil
}

func (t *TDecimal) TypeRefs() []*TypeRef { return nil }
func (t *TDecimal) Meta() Meta           { return t.meta }
