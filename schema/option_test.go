package schema_test

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/schema"
	"github.com/cronosun/liquesco-go/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildOptionOfU8() (*schema.TypeContainer, schema.TypeRef) {
	b := schema.NewSchemaBuilder()
	_, err := b.Add("u8", u8Type())
	Expect(err).To(BeNil())
	ref, err := b.Add("maybe_u8", schema.NewOption(schema.IdentifierRef("u8"), schema.EmptyMeta()))
	Expect(err).To(BeNil())
	container, err := b.Finish(ref)
	Expect(err).To(BeNil())
	return container, ref
}

var _ = Describe("Option", func() {
	It("validates absent and present values", func() {
		container, ref := buildOptionOfU8()

		absent := codec.NewWriter()
		absent.WriteOptionAbsent()
		Expect(validate.Validate(container, ref, schema.Config{}, absent.Bytes())).To(BeNil())

		present := codec.NewWriter()
		present.WriteOptionPresent()
		_ = present.WriteUInt(bigIntLit(9))
		Expect(validate.Validate(container, ref, schema.Config{}, present.Bytes())).To(BeNil())
	})

	It("orders absent before present, then by inner value", func() {
		container, ref := buildOptionOfU8()

		absent := codec.NewWriter()
		absent.WriteOptionAbsent()
		low := codec.NewWriter()
		low.WriteOptionPresent()
		_ = low.WriteUInt(bigIntLit(1))
		high := codec.NewWriter()
		high.WriteOptionPresent()
		_ = high.WriteUInt(bigIntLit(2))

		cmp, err := validate.Compare(container, ref, absent.Bytes(), low.Bytes())
		Expect(err).To(BeNil())
		Expect(cmp).To(Equal(schema.Less))

		cmp, err = validate.Compare(container, ref, low.Bytes(), high.Bytes())
		Expect(err).To(BeNil())
		Expect(cmp).To(Equal(schema.Less))
	})

	It("stays skippable as an unparsed extension value", func() {
		w := codec.NewWriter()
		w.WriteOptionPresent()
		_ = w.WriteUInt(bigIntLit(200))
		w.WriteBool(true)

		r := codec.NewReader(w.Bytes())
		Expect(codec.SkipValue(r)).To(BeNil())
		v, err := codec.ReadBool(r)
		Expect(err).To(BeNil())
		Expect(v).To(BeTrue())
	})
})
