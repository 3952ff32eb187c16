package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// Field is one named, ordered member of a TStruct.
type Field struct {
	Name common.Identifier
	Type TypeRef
}

// TStruct is a fixed ordered list of named fields, wire-encoded as a Seq
// header of count M >= len(Fields) (fewer is a StructureError; more is
// a StructureError only when Config.NoExtension is set). Extension
// values beyond len(Fields) are skipped, never compared (spec §4.2
// Struct).
type TStruct struct {
	meta   Meta
	Fields []Field
}

func NewStruct(fields []Field, meta Meta) *TStruct {
	return &TStruct{meta: meta, Fields: fields}
}

func (t *TStruct) Validate(ctx Context) error {
	n, err := readSeqHeader(ctx.Reader())
	if err != nil {
		return err
	}
	nFields := uint32(len(t.Fields))
	if n < nFields {
		return common.New(common.KindStructure, "struct has %d values, needs at least %d fields", n, nFields)
	}
	if n > nFields && ctx.Config().NoExtension {
		return common.New(common.KindStructure, "struct has %d extension values but no_extension is set", n-nFields)
	}
	for _, f := range t.Fields {
		fieldType, err := ctx.Resolve(f.Type)
		if err != nil {
			return err
		}
		if err := fieldType.Validate(ctx); err != nil {
			return err
		}
	}
	for i := nFields; i < n; i++ {
		if err := codec.SkipValue(ctx.Reader()); err != nil {
			return err
		}
	}
	return nil
}

// Compare uses only the schema-declared fields, then drains whatever
// extension values remain on both readers so a caller invoking Compare
// directly (outside Validate) still leaves both readers fully consumed
// (spec §4.2, §4.4, §8 property 6: extension-insensitive ordering).
func (t *TStruct) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	n1, err := readSeqHeader(r1)
	if err != nil {
		return 0, err
	}
	n2, err := readSeqHeader(r2)
	if err != nil {
		return 0, err
	}
	result := Equal
	for _, f := range t.Fields {
		fieldType, err := ctx.Resolve(f.Type)
		if err != nil {
			return 0, err
		}
		cmp, err := fieldType.Compare(ctx, r1, r2)
		if err != nil {
			return 0, err
		}
		if cmp != Equal && result == Equal {
			result = cmp
		}
	}
	nFields := uint32(len(t.Fields))
	for i := nFields; i < n1; i++ {
		if err := codec.SkipValue(r1); err != nil {
			return 0, err
		}
	}
	for i := nFields; i < n2; i++ {
		if err := codec.SkipValue(r2); err != nil {
			return 0, err
		}
	}
	return result, nil
}

func (t *TStruct) TypeRefs() []*TypeRef {
	refs := make([]*TypeRef, len(t.Fields))
	for i := range t.Fields {
		refs[i] = &t.Fields[i].Type
	}
	return refs
}
func (t *TStruct) Meta() Meta { return t.meta }
