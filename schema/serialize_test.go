package schema_test

import (
	"reflect"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/cronosun/liquesco-go/schema"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buildKitchenSinkContainer touches every type variant once so the
// serialization roundtrip exercises the full algebra.
func buildKitchenSinkContainer() *schema.TypeContainer {
	meta, err := schema.NewMeta("the documented one", []uuid.UUID{uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")})
	Expect(err).To(BeNil())

	f64Range, err := common.NewRange(-1000.5, 1000.5)
	Expect(err).To(BeNil())
	f64, err := schema.NewFloat64(f64Range, schema.FloatFlags{NaN: true, PositiveZero: true}, schema.EmptyMeta())
	Expect(err).To(BeNil())

	f32Range, err := common.NewRange[float32](-1, 1)
	Expect(err).To(BeNil())
	f32, err := schema.NewFloat32(f32Range, schema.FloatFlags{Subnormal: true}, schema.EmptyMeta())
	Expect(err).To(BeNil())

	expRange, err := common.NewRange[int8](-10, 10)
	Expect(err).To(BeNil())
	dec, err := schema.NewDecimal(
		common.FromParts(bigIntLit(-1000), 0), common.FromParts(bigIntLit(1000), 0),
		bigRange(-100000, 100000), expRange, schema.EmptyMeta())
	Expect(err).To(BeNil())

	b := schema.NewSchemaBuilder()
	mustAdd := func(id string, t schema.Type) {
		_, err := b.Add(id, t)
		Expect(err).To(BeNil())
	}
	mustAdd("flag", schema.NewBool(meta))
	mustAdd("u8", u8Type())
	mustAdd("temperature", schema.NewSInt(bigRange(-100, 100), schema.EmptyMeta()))
	mustAdd("ratio", f64)
	mustAdd("gain", f32)
	mustAdd("price", dec)
	mustAdd("label", schema.NewUnicode(u64Range(0, 100), schema.LengthScalarValues, schema.EmptyMeta()))
	mustAdd("code", schema.NewAscii(u64Range(1, 8), twoAsciiCodes(), schema.EmptyMeta()))
	mustAdd("token", schema.NewUuid(schema.EmptyMeta()))
	mustAdd("maybe_u8", schema.NewOption(schema.IdentifierRef("u8"), schema.EmptyMeta()))
	mustAdd("values", schema.NewSeq(
		schema.IdentifierRef("u8"), u64Range(0, 50),
		schema.SeqOrdering{Sorted: true, Direction: schema.Ascending, Unique: true},
		schema.EmptyMeta()).WithMultipleOf(2))
	mustAdd("by_code", schema.NewMap(
		schema.IdentifierRef("code"), schema.IdentifierRef("u8"),
		u64Range(0, 20), schema.Ascending, true, schema.EmptyMeta()))
	mustAdd("registry", schema.NewRootMap(
		schema.IdentifierRef("code"), schema.IdentifierRef("u8"), schema.IdentifierRef("pick"),
		u64Range(0, 20), schema.Descending, schema.EmptyMeta()))
	mustAdd("pick", schema.NewKeyRef(0, schema.EmptyMeta()))
	mustAdd("point", schema.NewStruct([]schema.Field{
		{Name: mustIdent("x"), Type: schema.IdentifierRef("u8")},
		{Name: mustIdent("y"), Type: schema.IdentifierRef("u8")},
	}, schema.EmptyMeta()))
	mustAdd("shade", schema.NewEnum([]schema.Variant{
		{Name: mustIdent("light")},
		{Name: mustIdent("custom"), Values: []schema.TypeRef{schema.IdentifierRef("u8")}},
	}, schema.EmptyMeta()))
	mustAdd("span", schema.NewRange(schema.IdentifierRef("u8"), schema.Supplied, true, schema.EmptyMeta()))

	container, err := b.Finish(schema.IdentifierRef("registry"))
	Expect(err).To(BeNil())
	return container
}

var _ = Describe("Schema serialization", func() {
	It("round-trips every type variant through the wire format", func() {
		original := buildKitchenSinkContainer()

		w := codec.NewWriter()
		Expect(schema.WriteTypeContainer(w, original)).To(BeNil())

		r := codec.NewReader(w.Bytes())
		back, err := schema.ReadTypeContainer(r)
		Expect(err).To(BeNil())
		Expect(r.Remaining()).To(Equal(0))

		Expect(back.Len()).To(Equal(original.Len()))
		Expect(back.Root()).To(Equal(original.Root()))
		for i := 0; i < original.Len(); i++ {
			ref := schema.NumericalRef(uint32(i))
			origID, _ := original.Identifier(ref)
			backID, _ := back.Identifier(ref)
			Expect(backID.Equal(origID)).To(BeTrue())
			origType, _ := original.MaybeType(ref)
			backType, _ := back.MaybeType(ref)
			Expect(reflect.DeepEqual(origType, backType)).To(BeTrue())
		}
	})

	It("re-encodes to identical bytes (canonical encoding is idempotent)", func() {
		original := buildKitchenSinkContainer()

		w1 := codec.NewWriter()
		Expect(schema.WriteTypeContainer(w1, original)).To(BeNil())
		back, err := schema.ReadTypeContainer(codec.NewReader(w1.Bytes()))
		Expect(err).To(BeNil())

		w2 := codec.NewWriter()
		Expect(schema.WriteTypeContainer(w2, back)).To(BeNil())
		Expect(w2.Bytes()).To(Equal(w1.Bytes()))
	})

	It("refuses to serialize an unresolved identifier ref", func() {
		w := codec.NewWriter()
		err := schema.WriteType(w, schema.NewOption(schema.IdentifierRef("dangling"), schema.EmptyMeta()))
		Expect(err).ToNot(BeNil())
	})

	It("rejects a serialized container whose root is out of range", func() {
		b := schema.NewSchemaBuilder()
		ref, err := b.Add("flag", schema.NewBool(schema.EmptyMeta()))
		Expect(err).To(BeNil())
		container, err := b.Finish(ref)
		Expect(err).To(BeNil())

		w := codec.NewWriter()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 1})
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteUnicode("flag")
		typ, _ := container.MaybeType(container.Root())
		Expect(schema.WriteType(w, typ)).To(BeNil())
		_ = w.WriteUInt(bigIntLit(7)) // root index beyond the single entry
		_, err = schema.ReadTypeContainer(codec.NewReader(w.Bytes()))
		Expect(err).ToNot(BeNil())
	})
})
