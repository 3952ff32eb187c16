package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// Direction is the sort direction a Seq's Sorted ordering enforces.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SeqOrdering describes a Seq's sortedness constraint: Sorted=false
// means no constraint, Sorted=true enforces Direction and optionally
// uniqueness (spec §4.2 Seq).
type SeqOrdering struct {
	Sorted    bool
	Direction Direction
	Unique    bool
}

// TSeq is a homogeneous sequence of Element, whose length must satisfy
// Length (and MultipleOf, if HasMultipleOf), and which may additionally
// require its elements to be sorted/unique (spec §4.2 Seq).
type TSeq struct {
	meta          Meta
	Element       TypeRef
	Length        common.Range[uint64]
	HasMultipleOf bool
	MultipleOf    uint64
	Order         SeqOrdering
}

func NewSeq(element TypeRef, length common.Range[uint64], order SeqOrdering, meta Meta) *TSeq {
	return &TSeq{meta: meta, Element: element, Length: length, Order: order}
}

// WithMultipleOf sets the multiple-of constraint on the sequence length.
func (t *TSeq) WithMultipleOf(n uint64) *TSeq {
	t.HasMultipleOf = true
	t.MultipleOf = n
	return t
}

func readSeqHeader(r *codec.Reader) (uint32, error) {
	h, err := codec.ReadHeader(r)
	if err != nil {
		return 0, err
	}
	if h.Major != codec.MajorSeq {
		return 0, common.New(common.KindCodec, "expected Seq header, got major %d", h.Major)
	}
	desc, err := codec.ReadContentDescription(r, h)
	if err != nil {
		return 0, err
	}
	if desc.SelfLength != 0 {
		return 0, common.New(common.KindCodec, "seq header must not carry self-length bytes, got %d", desc.SelfLength)
	}
	return desc.Embedded, nil
}

func (t *TSeq) Validate(ctx Context) error {
	n, err := readSeqHeader(ctx.Reader())
	if err != nil {
		return err
	}
	if !t.Length.Contains(uint64(n)) {
		return common.New(common.KindConstraint, "seq length %d outside range [%d, %d]", n, t.Length.Start, t.Length.End)
	}
	if t.HasMultipleOf && t.MultipleOf > 0 && uint64(n)%t.MultipleOf != 0 {
		return common.New(common.KindConstraint, "seq length %d is not a multiple of %d", n, t.MultipleOf)
	}
	element, err := ctx.Resolve(t.Element)
	if err != nil {
		return err
	}
	var prevReader *codec.Reader
	for i := uint32(0); i < n; i++ {
		elemStart := ctx.Reader().Clone()
		if err := element.Validate(ctx); err != nil {
			return err
		}
		if t.Order.Sorted && prevReader != nil {
			cmp, err := element.Compare(ctx, prevReader, elemStart)
			if err != nil {
				return err
			}
			if t.Order.Direction == Ascending {
				if cmp > 0 || (cmp == 0 && t.Order.Unique) {
					return common.New(common.KindStructure, "seq element %d violates ascending%s order", i, uniqueSuffix(t.Order.Unique))
				}
			} else {
				if cmp < 0 || (cmp == 0 && t.Order.Unique) {
					return common.New(common.KindStructure, "seq element %d violates descending%s order", i, uniqueSuffix(t.Order.Unique))
				}
			}
		}
		prevReader = elemStart
	}
	return nil
}

func uniqueSuffix(unique bool) string {
	if unique {
		return ", unique"
	}
	return ""
}

// Compare implements the Seq state machine from spec §4.4: compare
// element by element; on the first non-equal element return that
// Ordering immediately (both readers MAY stop there); if every common
// element is equal, the shorter sequence is Less and the longer reader
// is left before its remaining elements. When the lengths also match,
// the result is Equal and both readers are drained exactly.
func (t *TSeq) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	n1, err := readSeqHeader(r1)
	if err != nil {
		return 0, err
	}
	n2, err := readSeqHeader(r2)
	if err != nil {
		return 0, err
	}
	element, err := ctx.Resolve(t.Element)
	if err != nil {
		return 0, err
	}
	minN := n1
	if n2 < minN {
		minN = n2
	}
	for i := uint32(0); i < minN; i++ {
		cmp, err := element.Compare(ctx, r1, r2)
		if err != nil {
			return 0, err
		}
		if cmp != Equal {
			return cmp, nil
		}
	}
	if n1 < n2 {
		return Less, nil
	}
	if n1 > n2 {
		return Greater, nil
	}
	return Equal, nil
}

func (t *TSeq) TypeRefs() []*TypeRef { return []*TypeRef{&t.Element} }
func (t *TSeq) Meta() Meta           { return t.meta }
