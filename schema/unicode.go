package schema

import (
	"bytes"
	"unicode/utf8"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// UnicodeLengthType selects which unit the Unicode type's length range
// is measured in (spec §4.2 Unicode).
type UnicodeLengthType int

const (
	LengthBytes UnicodeLengthType = iota
	LengthUtf8Bytes
	LengthScalarValues
)

// TUnicode validates raw UTF-8 bytes whose length (measured per
// LengthType) falls within Length; comparison is lexicographic over the
// raw bytes (spec §4.2 Unicode).
type TUnicode struct {
	meta       Meta
	Length     common.Range[uint64]
	LengthType UnicodeLengthType
}

func NewUnicode(length common.Range[uint64], lengthType UnicodeLengthType, meta Meta) *TUnicode {
	return &TUnicode{meta: meta, Length: length, LengthType: lengthType}
}

func (t *TUnicode) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	s, err := codec.ReadUnicode(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { w.WriteUnicode(s) }); err != nil {
		return err
	}
	if !utf8.ValidString(s) {
		return common.New(common.KindCodec, "unicode value is not valid UTF-8")
	}
	length := t.measure(s)
	if !t.Length.Contains(length) {
		return common.New(common.KindConstraint, "unicode length %d outside range [%d, %d]", length, t.Length.Start, t.Length.End)
	}
	return nil
}

func (t *TUnicode) measure(s string) uint64 {
	switch t.LengthType {
	case LengthScalarValues:
		return uint64(utf8.RuneCountInString(s))
	default: // LengthBytes, LengthUtf8Bytes: identical for a []byte-backed string
		return uint64(len(s))
	}
}

func (t *TUnicode) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadUnicode(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadUnicode(r2)
	if err != nil {
		return 0, err
	}
	return bytes.Compare([]byte(a), []byte(b)), nil
}

func (t *TUnicode) TypeRefs() []*TypeRef { return nil }
func (t *TUnicode) Meta() Meta           { return t.meta }
