package codec_test

import (
	"math/big"

	"github.com/cronosun/liquesco-go/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar codec", func() {
	Context("UInt canonical encoding", func() {
		It("encodes 42 in the scalar roundtrip scenario as a 1-byte self-length", func() {
			w := codec.NewWriter()
			Expect(w.WriteUInt(big.NewInt(42))).To(BeNil())
			Expect(w.Bytes()).To(Equal([]byte{byte(codec.MajorUInt)*13 + 1, 0x2A}))
		})
		It("encodes 0 with self-length 0, never emitting a 1-byte 0x00 payload", func() {
			w := codec.NewWriter()
			Expect(w.WriteUInt(big.NewInt(0))).To(BeNil())
			Expect(w.Bytes()).To(Equal([]byte{byte(codec.MajorUInt) * 13}))
		})
		It("round-trips through ReadUInt", func() {
			w := codec.NewWriter()
			Expect(w.WriteUInt(big.NewInt(70000))).To(BeNil())
			r := codec.NewReader(w.Bytes())
			v, err := codec.ReadUInt(r)
			Expect(err).To(BeNil())
			Expect(v.Int64()).To(Equal(int64(70000)))
		})
		It("rejects negative values", func() {
			w := codec.NewWriter()
			Expect(w.WriteUInt(big.NewInt(-1))).ToNot(BeNil())
		})
	})

	Context("SInt", func() {
		It("round-trips negative values", func() {
			w := codec.NewWriter()
			w.WriteSInt(big.NewInt(-12345))
			r := codec.NewReader(w.Bytes())
			v, err := codec.ReadSInt(r)
			Expect(err).To(BeNil())
			Expect(v.Int64()).To(Equal(int64(-12345)))
		})
		It("encodes zero with self-length 0", func() {
			w := codec.NewWriter()
			w.WriteSInt(big.NewInt(0))
			Expect(w.Bytes()).To(Equal([]byte{byte(codec.MajorSInt) * 13}))
		})
		It("round-trips large 128-bit magnitude values", func() {
			big128, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
			w := codec.NewWriter()
			w.WriteSInt(big128)
			r := codec.NewReader(w.Bytes())
			v, err := codec.ReadSInt(r)
			Expect(err).To(BeNil())
			Expect(v.Cmp(big128)).To(Equal(0))
		})
	})

	Context("Bool", func() {
		It("round-trips true and false", func() {
			w := codec.NewWriter()
			w.WriteBool(true)
			w.WriteBool(false)
			r := codec.NewReader(w.Bytes())
			t, err := codec.ReadBool(r)
			Expect(err).To(BeNil())
			Expect(t).To(BeTrue())
			f, err := codec.ReadBool(r)
			Expect(err).To(BeNil())
			Expect(f).To(BeFalse())
		})
	})

	Context("Unicode/Ascii", func() {
		It("round-trips a UTF-8 string", func() {
			w := codec.NewWriter()
			w.WriteUnicode("héllo")
			r := codec.NewReader(w.Bytes())
			s, err := codec.ReadUnicode(r)
			Expect(err).To(BeNil())
			Expect(s).To(Equal("héllo"))
		})
		It("round-trips raw ascii bytes", func() {
			w := codec.NewWriter()
			w.WriteAscii([]byte("AL"))
			r := codec.NewReader(w.Bytes())
			b, err := codec.ReadAscii(r)
			Expect(err).To(BeNil())
			Expect(b).To(Equal([]byte("AL")))
		})
	})

	Context("Decimal", func() {
		It("round-trips coefficient and exponent", func() {
			w := codec.NewWriter()
			w.WriteDecimal(big.NewInt(12345), -2)
			r := codec.NewReader(w.Bytes())
			coeff, exp, err := codec.ReadDecimal(r)
			Expect(err).To(BeNil())
			Expect(coeff.Int64()).To(Equal(int64(12345)))
			Expect(exp).To(Equal(int8(-2)))
		})
	})

	Context("Float", func() {
		It("round-trips float64", func() {
			w := codec.NewWriter()
			w.WriteFloat64(3.14159)
			r := codec.NewReader(w.Bytes())
			v, err := codec.ReadFloat64(r)
			Expect(err).To(BeNil())
			Expect(v).To(Equal(3.14159))
		})
	})
})
