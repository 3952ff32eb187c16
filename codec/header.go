// Package codec implements liquesco's wire format: a one-byte type
// header, a content description that compactly expresses a value's
// self-length and number of embedded values, little-endian scalars and
// LEB128 varints (spec §3.1, §4.1).
package codec

import "github.com/cronosun/liquesco-go/common"

// MajorType is the coarse type tag of a TypeHeader byte, packed as
// major*13 + info.
type MajorType uint8

// Major type tags (spec §3.1). Values are stable across a schema's
// lifetime by contract; exact integers are this implementation's choice.
const (
	MajorBoolFalse MajorType = 0
	MajorBoolTrue  MajorType = 1
	MajorOption    MajorType = 2
	MajorSeq       MajorType = 3
	MajorBinary    MajorType = 4
	MajorUnicode   MajorType = 5
	MajorUInt      MajorType = 6
	MajorSInt      MajorType = 7
	MajorFloat     MajorType = 8
	MajorDecimal   MajorType = 9
	MajorUuid      MajorType = 10
	MajorEnum0     MajorType = 11
	MajorEnum1     MajorType = 12
	MajorEnum2     MajorType = 13
	MajorEnum3     MajorType = 14
	MajorEnumN     MajorType = 15
)

// majorMultiplier is the fixed "major*13 + info" packing from spec §3.1.
const majorMultiplier = 13

// ContentInfo is the "content descriptor" field of a header byte (the
// byte modulo 13): how many self-length bytes follow and how many embedded values
// are nested inside (spec §3.1 table).
type ContentInfo uint8

const (
	InfoLen0                  ContentInfo = 0
	InfoLen1                  ContentInfo = 1
	InfoLen2                  ContentInfo = 2
	InfoLen4                  ContentInfo = 3
	InfoLen8                  ContentInfo = 4
	InfoLen16                 ContentInfo = 5
	InfoVarInt                ContentInfo = 6
	InfoContainerOneEmpty     ContentInfo = 7
	InfoContainerTwoEmpty     ContentInfo = 8
	InfoContainerOneOne       ContentInfo = 9
	InfoContainerVarIntEmpty  ContentInfo = 10
	InfoContainerVarIntVarInt ContentInfo = 11
	InfoReserved              ContentInfo = 12
)

// fixedSelfLengths maps the fixed-length ContentInfo values (0..5) to
// their self-length in bytes.
var fixedSelfLengths = [6]uint64{0, 1, 2, 4, 8, 16}

// TypeHeader is the single byte prefixing every encoded value.
type TypeHeader struct {
	Major MajorType
	Info  ContentInfo
}

// NewTypeHeader packs a MajorType and ContentInfo into a TypeHeader.
func NewTypeHeader(major MajorType, info ContentInfo) TypeHeader {
	return TypeHeader{Major: major, Info: info}
}

// Byte packs the header into its single wire byte.
func (h TypeHeader) Byte() byte {
	return byte(uint8(h.Major)*majorMultiplier + uint8(h.Info))
}

// HeaderFromByte unpacks a wire byte into a TypeHeader.
func HeaderFromByte(b byte) TypeHeader {
	return TypeHeader{
		Major: MajorType(b / majorMultiplier),
		Info:  ContentInfo(b % majorMultiplier),
	}
}

// ReadHeader reads one byte from r and unpacks it. It fails with a
// codec error if info==12 (reserved), per spec §4.1.
func ReadHeader(r *Reader) (TypeHeader, error) {
	b, err := r.ReadU8()
	if err != nil {
		return TypeHeader{}, err
	}
	h := HeaderFromByte(b)
	if h.Info == InfoReserved {
		return TypeHeader{}, common.New(common.KindCodec, "reserved content info (12) encountered at offset %d", r.Offset()-1)
	}
	return h, nil
}
