package schema

import (
	"bytes"

	"github.com/cronosun/liquesco-go/codec"
)

// TUuid is a fixed 16-byte value (spec §4.2 Uuid).
type TUuid struct {
	meta Meta
}

func NewUuid(meta Meta) *TUuid {
	return &TUuid{meta: meta}
}

func (t *TUuid) Validate(ctx Context) error {
	_, err := codec.ReadUuid(ctx.Reader())
	return err
}

func (t *TUuid) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadUuid(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadUuid(r2)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(a[:], b[:]), nil
}

func (t *TUuid) TypeRefs() []*TypeRef { return nil }
func (t *TUuid) Meta() Meta           { return t.meta }
