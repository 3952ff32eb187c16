package schema_test

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/schema"
	"github.com/cronosun/liquesco-go/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buildRootMap wires RootMap<u8, u8, root=KeyRef(0)> so the root value
// can reference the entries' keys.
func buildRootMap() (*schema.TypeContainer, schema.TypeRef) {
	b := schema.NewSchemaBuilder()
	_, err := b.Add("u8", u8Type())
	Expect(err).To(BeNil())
	_, err = b.Add("root_ref", schema.NewKeyRef(0, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	rm, err := b.Add("root_map", schema.NewRootMap(
		schema.IdentifierRef("u8"), schema.IdentifierRef("u8"), schema.IdentifierRef("root_ref"),
		u64Range(0, 10), schema.Ascending, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	container, err := b.Finish(rm)
	Expect(err).To(BeNil())
	return container, rm
}

func writeRootMap(entries [][2]int64, root uint32) []byte {
	w := codec.NewWriter()
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(entries))})
	for _, e := range entries {
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		_ = w.WriteUInt(bigIntLit(e[0]))
		_ = w.WriteUInt(bigIntLit(e[1]))
	}
	schema.WriteKeyRef(w, root)
	return w.Bytes()
}

var _ = Describe("RootMap", func() {
	It("lets the root reference an entry key by index", func() {
		container, ref := buildRootMap()
		data := writeRootMap([][2]int64{{1, 10}, {2, 20}}, 1)
		Expect(validate.Validate(container, ref, schema.Config{}, data)).To(BeNil())
	})

	It("rejects a root reference beyond the entry count", func() {
		container, ref := buildRootMap()
		data := writeRootMap([][2]int64{{1, 10}, {2, 20}}, 2)
		Expect(validate.Validate(container, ref, schema.Config{}, data)).ToNot(BeNil())
	})

	It("compares entries first, then roots", func() {
		container, ref := buildRootMap()
		a := writeRootMap([][2]int64{{1, 10}}, 0)
		b := writeRootMap([][2]int64{{1, 11}}, 0)
		cmp, err := validate.Compare(container, ref, a, b)
		Expect(err).To(BeNil())
		Expect(cmp).To(Equal(schema.Less))
	})
})
