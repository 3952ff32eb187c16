package codec_test

import (
	"math/big"

	"github.com/cronosun/liquesco-go/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SkipValue", func() {
	It("skips a scalar value entirely", func() {
		w := codec.NewWriter()
		Expect(w.WriteUInt(big.NewInt(1000))).To(BeNil())
		w.WriteBool(true)
		r := codec.NewReader(w.Bytes())
		Expect(codec.SkipValue(r)).To(BeNil())
		v, err := codec.ReadBool(r)
		Expect(err).To(BeNil())
		Expect(v).To(BeTrue())
	})

	It("skips a value with nested embedded values", func() {
		w := codec.NewWriter()
		w.WriteDecimal(big.NewInt(7), 0)
		w.WriteBool(false)
		r := codec.NewReader(w.Bytes())
		Expect(codec.SkipValue(r)).To(BeNil())
		v, err := codec.ReadBool(r)
		Expect(err).To(BeNil())
		Expect(v).To(BeFalse())
	})
})
