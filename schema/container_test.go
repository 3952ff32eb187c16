package schema_test

import (
	"github.com/cronosun/liquesco-go/schema"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SchemaBuilder / TypeContainer", func() {
	It("assigns indices in lexicographic identifier order", func() {
		b := schema.NewSchemaBuilder()
		_, err := b.Add("zebra", schema.NewBool(schema.EmptyMeta()))
		Expect(err).To(BeNil())
		aRef, err := b.Add("apple", schema.NewBool(schema.EmptyMeta()))
		Expect(err).To(BeNil())
		container, err := b.Finish(aRef)
		Expect(err).To(BeNil())

		idx, ok := container.Root().Index()
		Expect(ok).To(BeTrue())
		Expect(idx).To(Equal(uint32(0))) // "apple" < "zebra"

		id, ok := container.Identifier(schema.NumericalRef(0))
		Expect(ok).To(BeTrue())
		Expect(id.String()).To(Equal("apple"))
	})

	It("rejects finish when a type references an unknown identifier", func() {
		b := schema.NewSchemaBuilder()
		seqRef, err := b.Add("seq", schema.NewSeq(schema.IdentifierRef("missing"), u64Range(0, 1), schema.SeqOrdering{}, schema.EmptyMeta()))
		Expect(err).To(BeNil())
		_, err = b.Finish(seqRef)
		Expect(err).ToNot(BeNil())
	})

	It("allows an idempotent duplicate identifier but rejects a conflicting one", func() {
		b := schema.NewSchemaBuilder()
		_, err := b.Add("u8", u8Type())
		Expect(err).To(BeNil())
		_, err = b.Add("u8", u8Type())
		Expect(err).To(BeNil())
		_, err = b.Add("u8", schema.NewBool(schema.EmptyMeta()))
		Expect(err).ToNot(BeNil())
	})

	It("hashes a type and its dependencies stably", func() {
		build := func() *schema.TypeContainer {
			b := schema.NewSchemaBuilder()
			_, err := b.Add("u8", u8Type())
			Expect(err).To(BeNil())
			ref, err := b.Add("widget", schema.NewSeq(
				schema.IdentifierRef("u8"), u64Range(0, 5), schema.SeqOrdering{}, schema.EmptyMeta()))
			Expect(err).To(BeNil())
			container, err := b.Finish(ref)
			Expect(err).To(BeNil())
			return container
		}
		c1, c2 := build(), build()

		h1, err := c1.TypeHash(c1.Root(), schema.InformationType)
		Expect(err).To(BeNil())
		h2, err := c2.TypeHash(c2.Root(), schema.InformationType)
		Expect(err).To(BeNil())
		Expect(h1).To(Equal(h2))
	})

	It("hashes differently once documentation matters", func() {
		build := func(doc string) *schema.TypeContainer {
			meta := schema.EmptyMeta()
			if doc != "" {
				m, err := schema.NewMeta(doc, nil)
				Expect(err).To(BeNil())
				meta = m
			}
			b := schema.NewSchemaBuilder()
			ref, err := b.Add("widget", schema.NewBool(meta))
			Expect(err).To(BeNil())
			container, err := b.Finish(ref)
			Expect(err).To(BeNil())
			return container
		}
		plain, documented := build(""), build("a widget")

		hPlain, err := plain.TypeHash(plain.Root(), schema.InformationFull)
		Expect(err).To(BeNil())
		hDoc, err := documented.TypeHash(documented.Root(), schema.InformationFull)
		Expect(err).To(BeNil())
		Expect(hPlain).ToNot(Equal(hDoc))

		hPlainT, err := plain.TypeHash(plain.Root(), schema.InformationType)
		Expect(err).To(BeNil())
		hDocT, err := documented.TypeHash(documented.Root(), schema.InformationType)
		Expect(err).To(BeNil())
		Expect(hPlainT).To(Equal(hDocT))
	})
})
