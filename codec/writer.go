package codec

import (
	"encoding/binary"
	"math"

	"github.com/cronosun/liquesco-go/common"
)

// Writer accumulates an encoded liquesco value. It always emits the
// canonical (minimal) encoding: write_content_description always picks
// the smallest ContentInfo that fits the (self_length, embedded) pair,
// which is the "canonicalisation invariant" from spec §4.1 — the same
// value always produces the same bytes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) WriteU8(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) WriteSlice(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteVarintU32(v uint32) {
	w.WriteVarintU64(uint64(v))
}

func (w *Writer) WriteVarintU64(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.WriteSlice(tmp[:n])
}

func (w *Writer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.WriteSlice(tmp[:])
}

func (w *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.WriteSlice(tmp[:])
}

func (w *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.WriteSlice(tmp[:])
}

func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

func (w *Writer) WriteHeader(h TypeHeader) {
	w.WriteU8(h.Byte())
}

// ContentDescription is the (self_length, embedded) pair a header's
// ContentInfo compactly expresses (spec §3.1, §4.1).
type ContentDescription struct {
	SelfLength uint64
	Embedded   uint32
}

// WriteContentDescription writes the header byte (and any varints it
// implies) for major/content, always choosing the smallest ContentInfo
// that fits — embedded-value tags 7..9 are preferred over the general
// 10/11 tags whenever possible, exactly as spec §4.1 requires.
func (w *Writer) WriteContentDescription(major MajorType, content ContentDescription) {
	selfLen := content.SelfLength
	embedded := content.Embedded

	if embedded == 0 {
		info, fixed := fixedInfoFor(selfLen)
		w.WriteHeader(NewTypeHeader(major, info))
		if !fixed {
			w.WriteVarintU64(selfLen)
		}
		return
	}
	switch {
	case selfLen == 0 && embedded == 1:
		w.WriteHeader(NewTypeHeader(major, InfoContainerOneEmpty))
	case selfLen == 0 && embedded == 2:
		w.WriteHeader(NewTypeHeader(major, InfoContainerTwoEmpty))
	case selfLen == 1 && embedded == 1:
		w.WriteHeader(NewTypeHeader(major, InfoContainerOneOne))
	case selfLen == 0:
		w.WriteHeader(NewTypeHeader(major, InfoContainerVarIntEmpty))
		w.WriteVarintU32(embedded)
	default:
		w.WriteHeader(NewTypeHeader(major, InfoContainerVarIntVarInt))
		w.WriteVarintU64(selfLen)
		w.WriteVarintU32(embedded)
	}
}

// fixedInfoFor picks the fixed-width ContentInfo for a self-length with
// no embedded values, falling back to the varint form.
func fixedInfoFor(selfLen uint64) (info ContentInfo, fixed bool) {
	for i, l := range fixedSelfLengths {
		if l == selfLen {
			return ContentInfo(i), true
		}
	}
	return InfoVarInt, false
}

// ReadContentDescription consumes the varints (if any) that the header's
// Info field implies, per the spec §3.1 table.
func ReadContentDescription(r *Reader, h TypeHeader) (ContentDescription, error) {
	switch h.Info {
	case InfoLen0, InfoLen1, InfoLen2, InfoLen4, InfoLen8, InfoLen16:
		return ContentDescription{SelfLength: fixedSelfLengths[h.Info]}, nil
	case InfoVarInt:
		n, err := r.ReadVarintU64()
		if err != nil {
			return ContentDescription{}, err
		}
		return ContentDescription{SelfLength: n}, nil
	case InfoContainerOneEmpty:
		return ContentDescription{Embedded: 1}, nil
	case InfoContainerTwoEmpty:
		return ContentDescription{Embedded: 2}, nil
	case InfoContainerOneOne:
		return ContentDescription{SelfLength: 1, Embedded: 1}, nil
	case InfoContainerVarIntEmpty:
		n, err := r.ReadVarintU32()
		if err != nil {
			return ContentDescription{}, err
		}
		return ContentDescription{Embedded: n}, nil
	case InfoContainerVarIntVarInt:
		selfLen, err := r.ReadVarintU64()
		if err != nil {
			return ContentDescription{}, err
		}
		n, err := r.ReadVarintU32()
		if err != nil {
			return ContentDescription{}, err
		}
		return ContentDescription{SelfLength: selfLen, Embedded: n}, nil
	default:
		return ContentDescription{}, common.New(common.KindCodec, "reserved or unknown content info %d", h.Info)
	}
}
