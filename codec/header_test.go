package codec_test

import (
	"github.com/cronosun/liquesco-go/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TypeHeader", func() {
	It("packs and unpacks major*13+info", func() {
		h := codec.NewTypeHeader(codec.MajorUInt, codec.InfoLen1)
		Expect(h.Byte()).To(Equal(byte(codec.MajorUInt)*13 + 1))
		back := codec.HeaderFromByte(h.Byte())
		Expect(back).To(Equal(h))
	})

	It("rejects reserved info 12 on read", func() {
		r := codec.NewReader([]byte{byte(codec.MajorUInt)*13 + 12})
		_, err := codec.ReadHeader(r)
		Expect(err).ToNot(BeNil())
	})
})
