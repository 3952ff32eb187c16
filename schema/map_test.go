package schema_test

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/schema"
	"github.com/cronosun/liquesco-go/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buildAnchoredMap wires Map<Ascii, Struct{refs: Seq<KeyRef>}> with
// anchors=true, matching the spec's "Map anchors" example.
func buildAnchoredMap() (*schema.TypeContainer, schema.TypeRef) {
	b := schema.NewSchemaBuilder()
	_, err := b.Add("key_ref", schema.NewKeyRef(0, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	_, err = b.Add("refs_seq", schema.NewSeq(schema.IdentifierRef("key_ref"), u64Range(0, 10), schema.SeqOrdering{}, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	_, err = b.Add("entry", schema.NewStruct([]schema.Field{
		{Name: mustIdent("refs"), Type: schema.IdentifierRef("refs_seq")},
	}, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	mapRef, err := b.Add("anchored_map", schema.NewMap(
		schema.IdentifierRef("ascii_key"), schema.IdentifierRef("entry"),
		u64Range(0, 10), schema.Ascending, true, schema.EmptyMeta()))
	Expect(err).To(BeNil())
	_, err = b.Add("ascii_key", schema.NewAscii(u64Range(1, 4), twoAsciiCodes(), schema.EmptyMeta()))
	Expect(err).To(BeNil())
	container, err := b.Finish(mapRef)
	Expect(err).To(BeNil())
	return container, mapRef
}

func writeEntryValueWithRefs(w *codec.Writer, refs ...uint32) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 1}) // struct with 1 field
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(refs))})
	for _, i := range refs {
		schema.WriteKeyRef(w, i)
	}
}

func writeMapEntry(w *codec.Writer, key string, writeValue func(*codec.Writer)) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	w.WriteAscii([]byte(key))
	writeValue(w)
}

var _ = Describe("Map", func() {
	It("validates a KeyRef in a value position iff its index is within the map length", func() {
		container, ref := buildAnchoredMap()
		w := codec.NewWriter()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 3})
		writeMapEntry(w, "a", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		writeMapEntry(w, "b", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		writeMapEntry(w, "c", func(w *codec.Writer) { writeEntryValueWithRefs(w, 0, 2) })
		Expect(validate.Validate(container, ref, schema.Config{}, w.Bytes())).To(BeNil())
	})

	It("rejects a KeyRef index at or beyond the map length", func() {
		container, ref := buildAnchoredMap()
		w := codec.NewWriter()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 3})
		writeMapEntry(w, "a", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		writeMapEntry(w, "b", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		writeMapEntry(w, "c", func(w *codec.Writer) { writeEntryValueWithRefs(w, 3) })
		Expect(validate.Validate(container, ref, schema.Config{}, w.Bytes())).ToNot(BeNil())
	})

	It("rejects keys that are not strictly ascending", func() {
		container, ref := buildAnchoredMap()
		w := codec.NewWriter()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		writeMapEntry(w, "b", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		writeMapEntry(w, "a", func(w *codec.Writer) { writeEntryValueWithRefs(w) })
		Expect(validate.Validate(container, ref, schema.Config{}, w.Bytes())).ToNot(BeNil())
	})

	It("rejects a key that references the map it is itself a key of", func() {
		b := schema.NewSchemaBuilder()
		mapRef, err := b.Add("self_ref_map", schema.NewMap(
			schema.IdentifierRef("key_ref"), schema.IdentifierRef("u8"),
			u64Range(0, 10), schema.Ascending, true, schema.EmptyMeta()))
		Expect(err).To(BeNil())
		_, err = b.Add("key_ref", schema.NewKeyRef(0, schema.EmptyMeta()))
		Expect(err).To(BeNil())
		_, err = b.Add("u8", u8Type())
		Expect(err).To(BeNil())
		container, err := b.Finish(mapRef)
		Expect(err).To(BeNil())

		w := codec.NewWriter()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 1})
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		schema.WriteKeyRef(w, 0)
		Expect(w.WriteUInt(bigIntLit(1))).To(BeNil())
		err = validate.Validate(container, mapRef, schema.Config{}, w.Bytes())
		Expect(err).ToNot(BeNil())
	})
})
