package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// Variant is one named case of a TEnum, carrying zero or more typed
// values (spec §4.2 Enum).
type Variant struct {
	Name   common.Identifier
	Values []TypeRef
}

// TEnum is a closed set of variants, each identified by its ordinal
// position. Wire layout: an EnumHeader carrying (ordinal,
// number_of_values) followed by that many embedded values.
type TEnum struct {
	meta     Meta
	Variants []Variant
}

func NewEnum(variants []Variant, meta Meta) *TEnum {
	return &TEnum{meta: meta, Variants: variants}
}

func (t *TEnum) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	hdr, err := codec.ReadEnumHeader(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { w.WriteEnumHeader(hdr) }); err != nil {
		return err
	}
	if int(hdr.Ordinal) >= len(t.Variants) {
		return common.New(common.KindStructure, "enum ordinal %d has no variant (only %d defined)", hdr.Ordinal, len(t.Variants))
	}
	variant := t.Variants[hdr.Ordinal]
	schemaCount := uint32(len(variant.Values))
	if hdr.NumberOfValues < schemaCount {
		return common.New(common.KindStructure, "enum variant %s needs %d values, data has %d", variant.Name.String(), schemaCount, hdr.NumberOfValues)
	}
	if ctx.Config().NoExtension && hdr.NumberOfValues != schemaCount {
		return common.New(common.KindStructure, "enum variant %s: no_extension set but data carries %d values, schema declares %d", variant.Name.String(), hdr.NumberOfValues, schemaCount)
	}
	for _, ref := range variant.Values {
		valueType, err := ctx.Resolve(ref)
		if err != nil {
			return err
		}
		if err := valueType.Validate(ctx); err != nil {
			return err
		}
	}
	for i := schemaCount; i < hdr.NumberOfValues; i++ {
		if err := codec.SkipValue(ctx.Reader()); err != nil {
			return err
		}
	}
	return nil
}

// Compare orders first by ordinal, then by the variant's declared
// values in order; extras are ignored for ordering but both readers are
// still drained so Equal means both readers fully consumed (spec §4.2,
// §4.4, §8 property 6).
func (t *TEnum) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	h1, err := codec.ReadEnumHeader(r1)
	if err != nil {
		return 0, err
	}
	h2, err := codec.ReadEnumHeader(r2)
	if err != nil {
		return 0, err
	}
	if h1.Ordinal != h2.Ordinal {
		if h1.Ordinal < h2.Ordinal {
			return Less, nil
		}
		return Greater, nil
	}
	if int(h1.Ordinal) >= len(t.Variants) {
		return 0, common.New(common.KindStructure, "enum ordinal %d has no variant", h1.Ordinal)
	}
	variant := t.Variants[h1.Ordinal]
	result := Equal
	for _, ref := range variant.Values {
		valueType, err := ctx.Resolve(ref)
		if err != nil {
			return 0, err
		}
		cmp, err := valueType.Compare(ctx, r1, r2)
		if err != nil {
			return 0, err
		}
		if result == Equal {
			result = cmp
		}
	}
	schemaCount := uint32(len(variant.Values))
	for i := schemaCount; i < h1.NumberOfValues; i++ {
		if err := codec.SkipValue(r1); err != nil {
			return 0, err
		}
	}
	for i := schemaCount; i < h2.NumberOfValues; i++ {
		if err := codec.SkipValue(r2); err != nil {
			return 0, err
		}
	}
	return result, nil
}

func (t *TEnum) TypeRefs() []*TypeRef {
	var refs []*TypeRef
	for i := range t.Variants {
		for j := range t.Variants[i].Values {
			refs = append(refs, &t.Variants[i].Values[j])
		}
	}
	return refs
}
func (t *TEnum) Meta() Meta { return t.meta }
