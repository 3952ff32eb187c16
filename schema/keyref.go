package schema

import (
	"math/big"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TKeyRef is a value type whose payload addresses one entry of an
// enclosing anchored Map/RootMap's key set: a UInt index into the
// Level-th frame from the top of the key-ref stack, 0 being the nearest
// enclosing anchored map (spec §4.2 KeyRef, §4.4 example 5).
type TKeyRef struct {
	meta  Meta
	Level uint32
}

func NewKeyRef(level uint32, meta Meta) *TKeyRef {
	return &TKeyRef{meta: meta, Level: level}
}

func (t *TKeyRef) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	index, err := codec.ReadUInt(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { _ = w.WriteUInt(index) }); err != nil {
		return err
	}
	frame, ok := ctx.KeyRefFrame(t.Level)
	if !ok {
		return common.New(common.KindReference, "key-ref level %d has no active anchor frame", t.Level)
	}
	if !index.IsUint64() || index.Uint64() >= uint64(frame.MapLen) {
		return common.New(common.KindReference, "key-ref index %s out of range for map of length %d", index.String(), frame.MapLen)
	}
	return nil
}

// Compare is purely numeric on the index; no stack lookup is needed to
// order two key-refs (spec §4.2 KeyRef: "Compare is numeric on the
// index").
func (t *TKeyRef) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	i1, err := codec.ReadUInt(r1)
	if err != nil {
		return 0, err
	}
	i2, err := codec.ReadUInt(r2)
	if err != nil {
		return 0, err
	}
	return i1.Cmp(i2), nil
}

// WriteKeyRef writes a KeyRef's index payload.
func WriteKeyRef(w *codec.Writer, index uint32) {
	_ = w.WriteUInt(big.NewInt(int64(index)))
}

func (t *TKeyRef) TypeRefs() []*TypeRef { return nil }
func (t *TKeyRef) Meta() Meta           { return t.meta }
