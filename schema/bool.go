package schema

import "github.com/cronosun/liquesco-go/codec"

// TBool is the Bool type: no payload, the header byte alone carries the
// value (spec §4.2 Bool).
type TBool struct {
	meta Meta
}

// NewBool builds a TBool with the given metadata.
func NewBool(meta Meta) *TBool {
	return &TBool{meta: meta}
}

func (t *TBool) Validate(ctx Context) error {
	_, err := codec.ReadBool(ctx.Reader())
	return err
}

func (t *TBool) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadBool(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadBool(r2)
	if err != nil {
		return 0, err
	}
	if a == b {
		return Equal, nil
	}
	if !a && b {
		return Less, nil
	}
	return Greater, nil
}

func (t *TBool) TypeRefs() []*TypeRef { return nil }
func (t *TBool) Meta() Meta           { return t.meta }
