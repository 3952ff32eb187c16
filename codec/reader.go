package codec

import (
	"encoding/binary"
	"math"

	"github.com/cronosun/liquesco-go/common"
)

// Reader is a cursor over a borrowed byte slice. It never copies or
// owns its buffer (spec §5 "Memory"); Clone creates an independent
// cursor over the same underlying bytes, used by the comparator to run
// two readers in lockstep and by extended diagnostics to peek ahead
// without disturbing the real read position.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader wraps buf for reading from offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() uint64 {
	return uint64(r.offset)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Clone returns an independent cursor sharing the same backing buffer.
func (r *Reader) Clone() *Reader {
	return &Reader{buf: r.buf, offset: r.offset}
}

// PeekU8 returns the next byte without advancing the cursor.
func (r *Reader) PeekU8() (byte, error) {
	if r.offset >= len(r.buf) {
		return 0, shortRead(1, 0)
	}
	return r.buf[r.offset], nil
}

// ReadU8 reads and consumes one byte.
func (r *Reader) ReadU8() (byte, error) {
	b, err := r.PeekU8()
	if err != nil {
		return 0, err
	}
	r.offset++
	return b, nil
}

// ReadSlice consumes and returns the next n bytes (a view into the
// shared backing array, not a copy).
func (r *Reader) ReadSlice(n int) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.buf) {
		return nil, shortRead(n, len(r.buf)-r.offset)
	}
	s := r.buf[r.offset : r.offset+n]
	r.offset += n
	return s, nil
}

func shortRead(want, have int) error {
	return common.New(common.KindCodec, "short read: wanted %d bytes, only %d available", want, have)
}

// ReadLengthSlice is ReadSlice for a wire-declared u64 length, guarding
// against int overflow on 32-bit platforms before converting.
func (r *Reader) ReadLengthSlice(n uint64) ([]byte, error) {
	if n > uint64(math.MaxInt) {
		return nil, common.New(common.KindCodec, "declared length %d overflows the platform's int", n)
	}
	return r.ReadSlice(int(n))
}

// ReadVarintU32 reads a LEB128-encoded, minimum-length u32.
func (r *Reader) ReadVarintU32() (uint32, error) {
	v, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, common.New(common.KindCodec, "varint %d overflows u32", v)
	}
	return uint32(v), nil
}

// ReadVarintU64 reads a LEB128-encoded, minimum-length u64.
func (r *Reader) ReadVarintU64() (uint64, error) {
	return r.readVarint()
}

func (r *Reader) readVarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.offset:])
	if n == 0 {
		return 0, shortRead(1, r.Remaining())
	}
	if n < 0 {
		return 0, common.New(common.KindCodec, "varint overflows u64")
	}
	r.offset += n
	return v, nil
}

func (r *Reader) ReadU16() (uint16, error) {
	s, err := r.ReadSlice(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	s, err := r.ReadSlice(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	s, err := r.ReadSlice(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(s), nil
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// PeekHeader reads the next header byte without consuming it.
func (r *Reader) PeekHeader() (TypeHeader, error) {
	b, err := r.PeekU8()
	if err != nil {
		return TypeHeader{}, err
	}
	return HeaderFromByte(b), nil
}
