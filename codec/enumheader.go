package codec

import "github.com/cronosun/liquesco-go/common"

// EnumHeader is the (ordinal, number_of_values) pair an Enum value's
// header carries (spec §4.2 Enum). Ordinals 0-3 are encoded directly in
// the major type (MajorEnum0..MajorEnum3, self-length 0); larger
// ordinals use MajorEnumN with the ordinal itself as the self-length
// payload, sized to the smallest of 1/2/4 bytes. number_of_values always
// rides the content description's embedded-value count.
type EnumHeader struct {
	Ordinal        uint32
	NumberOfValues uint32
}

func enumMajorFor(ordinal uint32) MajorType {
	switch ordinal {
	case 0:
		return MajorEnum0
	case 1:
		return MajorEnum1
	case 2:
		return MajorEnum2
	case 3:
		return MajorEnum3
	default:
		return MajorEnumN
	}
}

// WriteEnumHeader writes an enum value's header.
func (w *Writer) WriteEnumHeader(h EnumHeader) {
	major := enumMajorFor(h.Ordinal)
	if major != MajorEnumN {
		w.WriteContentDescription(major, ContentDescription{Embedded: h.NumberOfValues})
		return
	}
	var selfLen uint64
	switch {
	case h.Ordinal <= 0xFF:
		selfLen = 1
	case h.Ordinal <= 0xFFFF:
		selfLen = 2
	default:
		selfLen = 4
	}
	w.WriteContentDescription(major, ContentDescription{SelfLength: selfLen, Embedded: h.NumberOfValues})
	switch selfLen {
	case 1:
		w.WriteU8(byte(h.Ordinal))
	case 2:
		w.WriteU16(uint16(h.Ordinal))
	default:
		w.WriteU32(h.Ordinal)
	}
}

// ReadEnumHeader reads an enum value's header.
func ReadEnumHeader(r *Reader) (EnumHeader, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return EnumHeader{}, err
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return EnumHeader{}, err
	}
	var ordinal uint32
	switch h.Major {
	case MajorEnum0, MajorEnum1, MajorEnum2, MajorEnum3:
		if desc.SelfLength != 0 {
			return EnumHeader{}, common.New(common.KindCodec, "enum major %d must have self-length 0, got %d", h.Major, desc.SelfLength)
		}
		ordinal = uint32(h.Major - MajorEnum0)
	case MajorEnumN:
		switch desc.SelfLength {
		case 1:
			b, err := r.ReadU8()
			if err != nil {
				return EnumHeader{}, err
			}
			ordinal = uint32(b)
		case 2:
			v, err := r.ReadU16()
			if err != nil {
				return EnumHeader{}, err
			}
			ordinal = uint32(v)
		case 4:
			v, err := r.ReadU32()
			if err != nil {
				return EnumHeader{}, err
			}
			ordinal = v
		default:
			return EnumHeader{}, common.New(common.KindCodec, "invalid enum self-length %d", desc.SelfLength)
		}
	default:
		return EnumHeader{}, common.New(common.KindCodec, "expected an enum header, got major %d", h.Major)
	}
	return EnumHeader{Ordinal: ordinal, NumberOfValues: desc.Embedded}, nil
}
