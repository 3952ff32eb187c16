package codec_test

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Uuid", func() {
	It("round-trips a fixed 16-byte payload", func() {
		id := uuid.New()
		w := codec.NewWriter()
		w.WriteUuid(id)
		Expect(len(w.Bytes())).To(Equal(1 + 16))
		r := codec.NewReader(w.Bytes())
		got, err := codec.ReadUuid(r)
		Expect(err).To(BeNil())
		Expect(got).To(Equal(id))
	})
})
