package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TUInt is an unsigned integer constrained to an inclusive range, up to
// 128 bits wide (spec §4.2 Scalars: UInt/SInt).
type TUInt struct {
	meta  Meta
	Range BigIntRange
}

func NewUInt(r BigIntRange, meta Meta) *TUInt {
	return &TUInt{meta: meta, Range: r}
}

func (t *TUInt) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	v, err := codec.ReadUInt(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { _ = w.WriteUInt(v) }); err != nil {
		return err
	}
	if !t.Range.Contains(v) {
		return common.New(common.KindConstraint, "uint value %s outside range [%s, %s]", v, t.Range.Start, t.Range.End)
	}
	return nil
}

func (t *TUInt) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadUInt(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadUInt(r2)
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

func (t *TUInt) TypeRefs() []*TypeRef { return nil }
func (t *TUInt) Meta() Meta           { return t.meta }
