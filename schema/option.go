package schema

import "github.com/cronosun/liquesco-go/codec"

// TOption wraps an inner type with an Absent/Present discriminator. On
// the wire an Option is a header carrying zero (absent) or one
// (present) embedded value, so a skipped Option stays structurally
// self-describing. Compare: Absent < Present; equal presence compares
// the inner value (spec §4.2 Option).
type TOption struct {
	meta  Meta
	Inner TypeRef
}

func NewOption(inner TypeRef, meta Meta) *TOption {
	return &TOption{meta: meta, Inner: inner}
}

func (t *TOption) Validate(ctx Context) error {
	present, err := codec.ReadOptionPresence(ctx.Reader())
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	inner, err := ctx.Resolve(t.Inner)
	if err != nil {
		return err
	}
	return inner.Validate(ctx)
}

func (t *TOption) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	p1, err := codec.ReadOptionPresence(r1)
	if err != nil {
		return 0, err
	}
	p2, err := codec.ReadOptionPresence(r2)
	if err != nil {
		return 0, err
	}
	if p1 != p2 {
		if !p1 {
			return Less, nil
		}
		return Greater, nil
	}
	if !p1 {
		return Equal, nil
	}
	inner, err := ctx.Resolve(t.Inner)
	if err != nil {
		return 0, err
	}
	return inner.Compare(ctx, r1, r2)
}

func (t *TOption) TypeRefs() []*TypeRef { return []*TypeRef{&t.Inner} }
func (t *TOption) Meta() Meta           { return t.meta }
