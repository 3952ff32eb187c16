package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// Inclusion selects which of a Range value's two endpoints are
// considered part of the range, or whether that choice travels with
// the value itself (spec §4.2 Range).
type Inclusion int

const (
	BothInclusive Inclusion = iota
	StartInclusive
	BothExclusive
	EndInclusive
	Supplied
)

// TRange is a value type carrying a [start, end] pair of Element values
// (plus, when Inclusion is Supplied, the two inclusion booleans), wire
// encoded as a 2- or 4-sequence. start must not be greater than end;
// equal endpoints are rejected unless AllowEmpty is set (spec §4.2
// Range).
type TRange struct {
	meta       Meta
	Element    TypeRef
	Inclusion  Inclusion
	AllowEmpty bool
}

func NewRange(element TypeRef, inclusion Inclusion, allowEmpty bool, meta Meta) *TRange {
	return &TRange{meta: meta, Element: element, Inclusion: inclusion, AllowEmpty: allowEmpty}
}

func (t *TRange) Validate(ctx Context) error {
	n, err := readSeqHeader(ctx.Reader())
	if err != nil {
		return err
	}
	if t.Inclusion == Supplied {
		if n != 4 {
			return common.New(common.KindStructure, "range with supplied inclusion must be a 4-sequence, got %d values", n)
		}
	} else if n != 2 {
		return common.New(common.KindStructure, "range must be a 2-sequence, got %d values", n)
	}
	element, err := ctx.Resolve(t.Element)
	if err != nil {
		return err
	}
	startStart := ctx.Reader().Clone()
	if err := element.Validate(ctx); err != nil {
		return err
	}
	endStart := ctx.Reader().Clone()
	if err := element.Validate(ctx); err != nil {
		return err
	}
	cmp, err := element.Compare(ctx, startStart, endStart)
	if err != nil {
		return err
	}
	if cmp == Greater {
		return common.New(common.KindStructure, "range start is greater than end")
	}
	if cmp == Equal && !t.AllowEmpty {
		return common.New(common.KindStructure, "empty range not allowed")
	}
	if t.Inclusion == Supplied {
		if _, err := codec.ReadBool(ctx.Reader()); err != nil {
			return err
		}
		if _, err := codec.ReadBool(ctx.Reader()); err != nil {
			return err
		}
	}
	return nil
}

// startInclusive/endInclusive report the fixed inclusion booleans for a
// non-Supplied Inclusion, mirroring the derivation spec §4.2 describes.
func (i Inclusion) startInclusive() bool { return i == BothInclusive || i == StartInclusive }
func (i Inclusion) endInclusive() bool   { return i == BothInclusive || i == EndInclusive }

func (t *TRange) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	if _, err := readSeqHeader(r1); err != nil {
		return 0, err
	}
	if _, err := readSeqHeader(r2); err != nil {
		return 0, err
	}
	element, err := ctx.Resolve(t.Element)
	if err != nil {
		return 0, err
	}
	startCmp, err := element.Compare(ctx, r1, r2)
	if err != nil {
		return 0, err
	}
	if startCmp != Equal {
		return startCmp, nil
	}
	endCmp, err := element.Compare(ctx, r1, r2)
	if err != nil {
		return 0, err
	}
	if endCmp != Equal {
		return endCmp, nil
	}
	if t.Inclusion == Supplied {
		for _, r := range []*codec.Reader{r1, r2} {
			if _, err := codec.ReadBool(r); err != nil {
				return 0, err
			}
			if _, err := codec.ReadBool(r); err != nil {
				return 0, err
			}
		}
	}
	return Equal, nil
}

func (t *TRange) TypeRefs() []*TypeRef { return []*TypeRef{&t.Element} }
func (t *TRange) Meta() Meta           { return t.meta }
