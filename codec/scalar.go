package codec

import (
	"math/big"

	"github.com/cronosun/liquesco-go/common"
	"github.com/google/uuid"
)

// widths are the only self-lengths the fixed-width scalar encodings
// (UInt, SInt, Decimal's coefficient) are allowed to pick from, per the
// header's ContentInfo table (spec §3.1).
var widths = [5]int{1, 2, 4, 8, 16}

// WriteBool writes a Bool value using the Major{BoolFalse,BoolTrue}
// header with no payload (spec §4.2 Bool).
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteHeader(NewTypeHeader(MajorBoolTrue, InfoLen0))
	} else {
		w.WriteHeader(NewTypeHeader(MajorBoolFalse, InfoLen0))
	}
}

// ReadBool reads a Bool value.
func ReadBool(r *Reader) (bool, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return false, err
	}
	switch h.Major {
	case MajorBoolFalse:
		return false, nil
	case MajorBoolTrue:
		return true, nil
	default:
		return false, common.New(common.KindCodec, "expected bool header, got major %d", h.Major)
	}
}

// WriteUInt writes an unsigned integer (up to 128 bits) using the
// smallest fitting width in {0,1,2,4,8,16}, little-endian.
func (w *Writer) WriteUInt(v *big.Int) error {
	if v.Sign() < 0 {
		return common.New(common.KindCodec, "WriteUInt given a negative value")
	}
	if v.Sign() == 0 {
		w.WriteContentDescription(MajorUInt, ContentDescription{SelfLength: 0})
		return nil
	}
	width := minUnsignedWidth(v)
	buf := make([]byte, width)
	leBytes(v, buf)
	w.WriteContentDescription(MajorUInt, ContentDescription{SelfLength: uint64(width)})
	w.WriteSlice(buf)
	return nil
}

// ReadUInt reads an unsigned integer.
func ReadUInt(r *Reader) (*big.Int, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Major != MajorUInt {
		return nil, common.New(common.KindCodec, "expected UInt header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return nil, err
	}
	if desc.SelfLength == 0 {
		return big.NewInt(0), nil
	}
	buf, err := r.ReadLengthSlice(desc.SelfLength)
	if err != nil {
		return nil, err
	}
	return fromLEBytesUnsigned(buf), nil
}

// WriteSInt writes a signed integer (up to 128 bits) using the smallest
// fitting two's-complement width in {0,1,2,4,8,16}, little-endian.
func (w *Writer) WriteSInt(v *big.Int) {
	if v.Sign() == 0 {
		w.WriteContentDescription(MajorSInt, ContentDescription{SelfLength: 0})
		return
	}
	width := minSignedWidth(v)
	buf := make([]byte, width)
	twosComplementLE(v, buf)
	w.WriteContentDescription(MajorSInt, ContentDescription{SelfLength: uint64(width)})
	w.WriteSlice(buf)
}

// ReadSInt reads a signed integer.
func ReadSInt(r *Reader) (*big.Int, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Major != MajorSInt {
		return nil, common.New(common.KindCodec, "expected SInt header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return nil, err
	}
	if desc.SelfLength == 0 {
		return big.NewInt(0), nil
	}
	buf, err := r.ReadLengthSlice(desc.SelfLength)
	if err != nil {
		return nil, err
	}
	return fromTwosComplementLE(buf), nil
}

// WriteFloat32 / WriteFloat64 write IEEE-754 values, always at their
// natural fixed width (spec §4.2 Float).
func (w *Writer) WriteFloat32(v float32) {
	w.WriteContentDescription(MajorFloat, ContentDescription{SelfLength: 4})
	w.WriteF32(v)
}

func (w *Writer) WriteFloat64(v float64) {
	w.WriteContentDescription(MajorFloat, ContentDescription{SelfLength: 8})
	w.WriteF64(v)
}

func ReadFloat32(r *Reader) (float32, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return 0, err
	}
	if h.Major != MajorFloat {
		return 0, common.New(common.KindCodec, "expected Float header, got major %d", h.Major)
	}
	if _, err := ReadContentDescription(r, h); err != nil {
		return 0, err
	}
	return r.ReadF32()
}

func ReadFloat64(r *Reader) (float64, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return 0, err
	}
	if h.Major != MajorFloat {
		return 0, common.New(common.KindCodec, "expected Float header, got major %d", h.Major)
	}
	if _, err := ReadContentDescription(r, h); err != nil {
		return 0, err
	}
	return r.ReadF64()
}

// WriteUnicode / WriteAscii write raw UTF-8 / ASCII bytes as the
// self-length payload (spec §3.1, §4.2).
func (w *Writer) WriteUnicode(s string) {
	w.WriteContentDescription(MajorUnicode, ContentDescription{SelfLength: uint64(len(s))})
	w.WriteSlice([]byte(s))
}

func ReadUnicode(r *Reader) (string, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return "", err
	}
	if h.Major != MajorUnicode {
		return "", common.New(common.KindCodec, "expected Unicode header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return "", err
	}
	buf, err := r.ReadLengthSlice(desc.SelfLength)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (w *Writer) WriteAscii(b []byte) {
	w.WriteContentDescription(MajorBinary, ContentDescription{SelfLength: uint64(len(b))})
	w.WriteSlice(b)
}

func ReadAscii(r *Reader) ([]byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Major != MajorBinary {
		return nil, common.New(common.KindCodec, "expected Ascii/Binary header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return nil, err
	}
	return r.ReadLengthSlice(desc.SelfLength)
}

// WriteOptionAbsent / WriteOptionPresent write an Option value's header.
// Absent is an Option header with no embedded values; Present carries
// exactly one embedded value, which the caller writes next (spec §4.2
// Option).
func (w *Writer) WriteOptionAbsent() {
	w.WriteContentDescription(MajorOption, ContentDescription{})
}

func (w *Writer) WriteOptionPresent() {
	w.WriteContentDescription(MajorOption, ContentDescription{Embedded: 1})
}

// ReadOptionPresence reads an Option header and reports whether a value
// follows.
func ReadOptionPresence(r *Reader) (bool, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return false, err
	}
	if h.Major != MajorOption {
		return false, common.New(common.KindCodec, "expected Option header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return false, err
	}
	if desc.SelfLength != 0 || desc.Embedded > 1 {
		return false, common.New(common.KindCodec, "option must carry 0 or 1 embedded values and no payload, got self_length=%d embedded=%d", desc.SelfLength, desc.Embedded)
	}
	return desc.Embedded == 1, nil
}

// WriteUuid / ReadUuid encode the fixed 16-byte Uuid payload.
func (w *Writer) WriteUuid(id uuid.UUID) {
	w.WriteContentDescription(MajorUuid, ContentDescription{SelfLength: 16})
	w.WriteSlice(id[:])
}

func ReadUuid(r *Reader) (uuid.UUID, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return uuid.UUID{}, err
	}
	if h.Major != MajorUuid {
		return uuid.UUID{}, common.New(common.KindCodec, "expected Uuid header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return uuid.UUID{}, err
	}
	if desc.SelfLength != 16 {
		return uuid.UUID{}, common.New(common.KindCodec, "uuid self-length must be 16, got %d", desc.SelfLength)
	}
	buf, err := r.ReadSlice(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	copy(id[:], buf)
	return id, nil
}

// WriteDecimal / ReadDecimal encode the [coefficient, exponent]
// composite (spec §4.2 Decimal): two embedded values, a signed
// coefficient and the exponent carried as a signed single byte.
func (w *Writer) WriteDecimal(coefficient *big.Int, exponent int8) {
	w.WriteContentDescription(MajorDecimal, ContentDescription{Embedded: 2})
	w.WriteSInt(coefficient)
	w.WriteSInt(big.NewInt(int64(exponent)))
}

func ReadDecimal(r *Reader) (*big.Int, int8, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, 0, err
	}
	if h.Major != MajorDecimal {
		return nil, 0, common.New(common.KindCodec, "expected Decimal header, got major %d", h.Major)
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return nil, 0, err
	}
	if desc.Embedded != 2 {
		return nil, 0, common.New(common.KindCodec, "decimal must have exactly 2 embedded values, got %d", desc.Embedded)
	}
	coefficient, err := ReadSInt(r)
	if err != nil {
		return nil, 0, err
	}
	exponentBig, err := ReadSInt(r)
	if err != nil {
		return nil, 0, err
	}
	if !exponentBig.IsInt64() || exponentBig.Int64() < -128 || exponentBig.Int64() > 127 {
		return nil, 0, common.New(common.KindCodec, "decimal exponent %s out of i8 range", exponentBig.String())
	}
	return coefficient, int8(exponentBig.Int64()), nil
}

func minUnsignedWidth(v *big.Int) int {
	bitLen := v.BitLen()
	for _, w := range widths {
		if bitLen <= w*8 {
			return w
		}
	}
	return widths[len(widths)-1]
}

func minSignedWidth(v *big.Int) int {
	for _, w := range widths {
		if fitsSigned(v, w) {
			return w
		}
	}
	return widths[len(widths)-1]
}

func fitsSigned(v *big.Int, width int) bool {
	bits := uint(width*8 - 1)
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	neg := new(big.Int).Neg(limit)
	max := new(big.Int).Sub(limit, big.NewInt(1))
	return v.Cmp(neg) >= 0 && v.Cmp(max) <= 0
}

func leBytes(v *big.Int, out []byte) {
	be := v.Bytes()
	for i := 0; i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
}

func fromLEBytesUnsigned(buf []byte) *big.Int {
	be := make([]byte, len(buf))
	for i := 0; i < len(buf); i++ {
		be[i] = buf[len(buf)-1-i]
	}
	return new(big.Int).SetBytes(be)
}

// twosComplementLE writes v's two's-complement representation, in
// little-endian byte order, into out (len(out) bytes wide). out must be
// zero-initialized; any bytes beyond u's natural length are left zero.
func twosComplementLE(v *big.Int, out []byte) {
	width := len(out)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	u := new(big.Int).Mod(v, mod)
	leBytes(u, out[:len(u.Bytes())])
}

// fromTwosComplementLE reconstructs a signed big.Int from a
// little-endian two's-complement byte slice.
func fromTwosComplementLE(buf []byte) *big.Int {
	u := fromLEBytesUnsigned(buf)
	width := len(buf)
	topBit := buf[width-1] & 0x80
	if topBit == 0 {
		return u
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	return new(big.Int).Sub(u, mod)
}
