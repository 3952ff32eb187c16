package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TSInt is a signed integer constrained to an inclusive range, up to
// 128 bits wide (spec §4.2 Scalars: UInt/SInt).
type TSInt struct {
	meta  Meta
	Range BigIntRange
}

func NewSInt(r BigIntRange, meta Meta) *TSInt {
	return &TSInt{meta: meta, Range: r}
}

func (t *TSInt) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	v, err := codec.ReadSInt(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { w.WriteSInt(v) }); err != nil {
		return err
	}
	if !t.Range.Contains(v) {
		return common.New(common.KindConstraint, "sint value %s outside range [%s, %s]", v, t.Range.Start, t.Range.End)
	}
	return nil
}

func (t *TSInt) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadSInt(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadSInt(r2)
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

func (t *TSInt) TypeRefs() []*TypeRef { return nil }
func (t *TSInt) Meta() Meta           { return t.meta }
