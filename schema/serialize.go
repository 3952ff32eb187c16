package schema

import (
	"math/big"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/google/uuid"
)

// A schema is itself a liquesco value (spec §6.2): every AnyType variant
// serializes as an enum value whose ordinal selects the variant and
// whose embedded values carry the variant's constraint parameters, meta
// first. A TypeContainer serializes as a 2-sequence of (the entry list)
// and (the root index). Only finalized schemas serialize: an identifier
// TypeRef anywhere in the graph is an error, matching the rule that
// identifier refs must be resolved before serialization (spec §3.3).
const (
	typeKindBool uint32 = iota
	typeKindUInt
	typeKindSInt
	typeKindFloat32
	typeKindFloat64
	typeKindDecimal
	typeKindUnicode
	typeKindAscii
	typeKindUuid
	typeKindOption
	typeKindSeq
	typeKindMap
	typeKindRootMap
	typeKindStruct
	typeKindEnum
	typeKindKeyRef
	typeKindRange
)

// WriteType serializes one type, meta included, using the wire format.
func WriteType(w *codec.Writer, t Type) error {
	return writeTypeWithMeta(w, t, t.Meta())
}

// writeTypeWithMeta is WriteType with the meta replaced, used by
// HashType to serialize a type at a reduced Information level without
// mutating it.
func writeTypeWithMeta(w *codec.Writer, t Type, meta Meta) error {
	switch v := t.(type) {
	case *TBool:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindBool, NumberOfValues: 1})
		writeMeta(w, meta)
		return nil
	case *TUInt:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindUInt, NumberOfValues: 2})
		writeMeta(w, meta)
		writeBigRange(w, v.Range)
		return nil
	case *TSInt:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindSInt, NumberOfValues: 2})
		writeMeta(w, meta)
		writeBigRange(w, v.Range)
		return nil
	case *TFloat32:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindFloat32, NumberOfValues: 3})
		writeMeta(w, meta)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteFloat32(v.Range.Start)
		w.WriteFloat32(v.Range.End)
		writeFloatFlags(w, v.Flags)
		return nil
	case *TFloat64:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindFloat64, NumberOfValues: 3})
		writeMeta(w, meta)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteFloat64(v.Range.Start)
		w.WriteFloat64(v.Range.End)
		writeFloatFlags(w, v.Flags)
		return nil
	case *TDecimal:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindDecimal, NumberOfValues: 4})
		writeMeta(w, meta)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteDecimal(v.ValueMin.Coefficient(), v.ValueMin.Exponent())
		w.WriteDecimal(v.ValueMax.Coefficient(), v.ValueMax.Exponent())
		writeBigRange(w, v.CoefficientRange)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteSInt(big.NewInt(int64(v.ExponentRange.Start)))
		w.WriteSInt(big.NewInt(int64(v.ExponentRange.End)))
		return nil
	case *TUnicode:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindUnicode, NumberOfValues: 3})
		writeMeta(w, meta)
		writeU64Range(w, v.Length)
		writeSmallUInt(w, uint64(v.LengthType))
		return nil
	case *TAscii:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindAscii, NumberOfValues: 3})
		writeMeta(w, meta)
		writeU64Range(w, v.Length)
		pairs := v.Codes.Pairs()
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(pairs) * 2)})
		for _, p := range pairs {
			writeSmallUInt(w, uint64(p.Min))
			writeSmallUInt(w, uint64(p.MaxExclusive))
		}
		return nil
	case *TUuid:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindUuid, NumberOfValues: 1})
		writeMeta(w, meta)
		return nil
	case *TOption:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindOption, NumberOfValues: 2})
		writeMeta(w, meta)
		return writeRef(w, v.Inner)
	case *TSeq:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindSeq, NumberOfValues: 5})
		writeMeta(w, meta)
		if err := writeRef(w, v.Element); err != nil {
			return err
		}
		writeU64Range(w, v.Length)
		if v.Order.Sorted {
			w.WriteEnumHeader(codec.EnumHeader{Ordinal: 1, NumberOfValues: 2})
			writeSmallUInt(w, uint64(v.Order.Direction))
			w.WriteBool(v.Order.Unique)
		} else {
			w.WriteEnumHeader(codec.EnumHeader{Ordinal: 0})
		}
		if v.HasMultipleOf {
			w.WriteOptionPresent()
			writeSmallUInt(w, v.MultipleOf)
		} else {
			w.WriteOptionAbsent()
		}
		return nil
	case *TMap:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindMap, NumberOfValues: 6})
		writeMeta(w, meta)
		if err := writeRef(w, v.Key); err != nil {
			return err
		}
		if err := writeRef(w, v.Value); err != nil {
			return err
		}
		writeU64Range(w, v.Length)
		writeSmallUInt(w, uint64(v.Direction))
		w.WriteBool(v.Anchors)
		return nil
	case *TRootMap:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindRootMap, NumberOfValues: 6})
		writeMeta(w, meta)
		if err := writeRef(w, v.Key); err != nil {
			return err
		}
		if err := writeRef(w, v.Value); err != nil {
			return err
		}
		if err := writeRef(w, v.Root); err != nil {
			return err
		}
		writeU64Range(w, v.Length)
		writeSmallUInt(w, uint64(v.Direction))
		return nil
	case *TStruct:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindStruct, NumberOfValues: 2})
		writeMeta(w, meta)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(v.Fields))})
		for _, f := range v.Fields {
			w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
			w.WriteUnicode(f.Name.String())
			if err := writeRef(w, f.Type); err != nil {
				return err
			}
		}
		return nil
	case *TEnum:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindEnum, NumberOfValues: 2})
		writeMeta(w, meta)
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(v.Variants))})
		for _, variant := range v.Variants {
			w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
			w.WriteUnicode(variant.Name.String())
			w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(variant.Values))})
			for _, ref := range variant.Values {
				if err := writeRef(w, ref); err != nil {
					return err
				}
			}
		}
		return nil
	case *TKeyRef:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindKeyRef, NumberOfValues: 2})
		writeMeta(w, meta)
		writeSmallUInt(w, uint64(v.Level))
		return nil
	case *TRange:
		w.WriteEnumHeader(codec.EnumHeader{Ordinal: typeKindRange, NumberOfValues: 4})
		writeMeta(w, meta)
		if err := writeRef(w, v.Element); err != nil {
			return err
		}
		writeSmallUInt(w, uint64(v.Inclusion))
		w.WriteBool(v.AllowEmpty)
		return nil
	default:
		return common.New(common.KindInternal, "cannot serialize unknown type %T", t)
	}
}

// ReadType deserializes one type written by WriteType.
func ReadType(r *codec.Reader) (Type, error) {
	hdr, err := codec.ReadEnumHeader(r)
	if err != nil {
		return nil, err
	}
	meta, err := readMeta(r)
	if err != nil {
		return nil, err
	}
	switch hdr.Ordinal {
	case typeKindBool:
		return NewBool(meta), readTail(r, hdr, 1)
	case typeKindUInt:
		rng, err := readBigRange(r)
		if err != nil {
			return nil, err
		}
		return NewUInt(rng, meta), readTail(r, hdr, 2)
	case typeKindSInt:
		rng, err := readBigRange(r)
		if err != nil {
			return nil, err
		}
		return NewSInt(rng, meta), readTail(r, hdr, 2)
	case typeKindFloat32:
		if err := expectSeqLen(r, 2); err != nil {
			return nil, err
		}
		start, err := codec.ReadFloat32(r)
		if err != nil {
			return nil, err
		}
		end, err := codec.ReadFloat32(r)
		if err != nil {
			return nil, err
		}
		flags, err := readFloatFlags(r)
		if err != nil {
			return nil, err
		}
		rng, err := common.NewRange(start, end)
		if err != nil {
			return nil, err
		}
		t, err := NewFloat32(rng, flags, meta)
		if err != nil {
			return nil, err
		}
		return t, readTail(r, hdr, 3)
	case typeKindFloat64:
		if err := expectSeqLen(r, 2); err != nil {
			return nil, err
		}
		start, err := codec.ReadFloat64(r)
		if err != nil {
			return nil, err
		}
		end, err := codec.ReadFloat64(r)
		if err != nil {
			return nil, err
		}
		flags, err := readFloatFlags(r)
		if err != nil {
			return nil, err
		}
		rng, err := common.NewRange(start, end)
		if err != nil {
			return nil, err
		}
		t, err := NewFloat64(rng, flags, meta)
		if err != nil {
			return nil, err
		}
		return t, readTail(r, hdr, 3)
	case typeKindDecimal:
		if err := expectSeqLen(r, 2); err != nil {
			return nil, err
		}
		minCoeff, minExp, err := codec.ReadDecimal(r)
		if err != nil {
			return nil, err
		}
		maxCoeff, maxExp, err := codec.ReadDecimal(r)
		if err != nil {
			return nil, err
		}
		coeffRange, err := readBigRange(r)
		if err != nil {
			return nil, err
		}
		expRange, err := readInt8Range(r)
		if err != nil {
			return nil, err
		}
		t, err := NewDecimal(
			common.FromPartsDenormalized(minCoeff, minExp),
			common.FromPartsDenormalized(maxCoeff, maxExp),
			coeffRange, expRange, meta)
		if err != nil {
			return nil, err
		}
		return t, readTail(r, hdr, 4)
	case typeKindUnicode:
		length, err := readU64Range(r)
		if err != nil {
			return nil, err
		}
		lt, err := readSmallUInt(r)
		if err != nil {
			return nil, err
		}
		if lt > uint64(LengthScalarValues) {
			return nil, common.New(common.KindStructure, "unknown unicode length type %d", lt)
		}
		return NewUnicode(length, UnicodeLengthType(lt), meta), readTail(r, hdr, 3)
	case typeKindAscii:
		length, err := readU64Range(r)
		if err != nil {
			return nil, err
		}
		n, err := readSeqLen(r)
		if err != nil {
			return nil, err
		}
		if n%2 != 0 {
			return nil, common.New(common.KindStructure, "ascii code range needs an even number of bounds, got %d", n)
		}
		pairs := make([]CodePair, 0, n/2)
		for i := uint32(0); i < n; i += 2 {
			min, err := readSmallUInt(r)
			if err != nil {
				return nil, err
			}
			max, err := readSmallUInt(r)
			if err != nil {
				return nil, err
			}
			if min > 0xFF || max > 0xFF {
				return nil, common.New(common.KindStructure, "ascii code bound out of byte range")
			}
			pairs = append(pairs, CodePair{Min: uint8(min), MaxExclusive: uint8(max)})
		}
		codes, err := NewCodeRange(pairs)
		if err != nil {
			return nil, err
		}
		return NewAscii(length, codes, meta), readTail(r, hdr, 3)
	case typeKindUuid:
		return NewUuid(meta), readTail(r, hdr, 1)
	case typeKindOption:
		inner, err := readRef(r)
		if err != nil {
			return nil, err
		}
		return NewOption(inner, meta), readTail(r, hdr, 2)
	case typeKindSeq:
		element, err := readRef(r)
		if err != nil {
			return nil, err
		}
		length, err := readU64Range(r)
		if err != nil {
			return nil, err
		}
		orderHdr, err := codec.ReadEnumHeader(r)
		if err != nil {
			return nil, err
		}
		var order SeqOrdering
		if orderHdr.Ordinal == 1 {
			direction, err := readSmallUInt(r)
			if err != nil {
				return nil, err
			}
			if direction > uint64(Descending) {
				return nil, common.New(common.KindStructure, "unknown sort direction %d", direction)
			}
			unique, err := codec.ReadBool(r)
			if err != nil {
				return nil, err
			}
			order = SeqOrdering{Sorted: true, Direction: Direction(direction), Unique: unique}
		} else if orderHdr.Ordinal != 0 {
			return nil, common.New(common.KindStructure, "unknown seq ordering variant %d", orderHdr.Ordinal)
		}
		seq := NewSeq(element, length, order, meta)
		present, err := codec.ReadOptionPresence(r)
		if err != nil {
			return nil, err
		}
		if present {
			multipleOf, err := readSmallUInt(r)
			if err != nil {
				return nil, err
			}
			seq.WithMultipleOf(multipleOf)
		}
		return seq, readTail(r, hdr, 5)
	case typeKindMap:
		key, err := readRef(r)
		if err != nil {
			return nil, err
		}
		value, err := readRef(r)
		if err != nil {
			return nil, err
		}
		length, err := readU64Range(r)
		if err != nil {
			return nil, err
		}
		direction, err := readDirection(r)
		if err != nil {
			return nil, err
		}
		anchors, err := codec.ReadBool(r)
		if err != nil {
			return nil, err
		}
		return NewMap(key, value, length, direction, anchors, meta), readTail(r, hdr, 6)
	case typeKindRootMap:
		key, err := readRef(r)
		if err != nil {
			return nil, err
		}
		value, err := readRef(r)
		if err != nil {
			return nil, err
		}
		root, err := readRef(r)
		if err != nil {
			return nil, err
		}
		length, err := readU64Range(r)
		if err != nil {
			return nil, err
		}
		direction, err := readDirection(r)
		if err != nil {
			return nil, err
		}
		return NewRootMap(key, value, root, length, direction, meta), readTail(r, hdr, 6)
	case typeKindStruct:
		n, err := readSeqLen(r)
		if err != nil {
			return nil, err
		}
		fields := make([]Field, 0, n)
		for i := uint32(0); i < n; i++ {
			if err := expectSeqLen(r, 2); err != nil {
				return nil, err
			}
			name, err := readIdentifier(r)
			if err != nil {
				return nil, err
			}
			ref, err := readRef(r)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: name, Type: ref})
		}
		return NewStruct(fields, meta), readTail(r, hdr, 2)
	case typeKindEnum:
		n, err := readSeqLen(r)
		if err != nil {
			return nil, err
		}
		variants := make([]Variant, 0, n)
		for i := uint32(0); i < n; i++ {
			if err := expectSeqLen(r, 2); err != nil {
				return nil, err
			}
			name, err := readIdentifier(r)
			if err != nil {
				return nil, err
			}
			valueCount, err := readSeqLen(r)
			if err != nil {
				return nil, err
			}
			var values []TypeRef
			for j := uint32(0); j < valueCount; j++ {
				ref, err := readRef(r)
				if err != nil {
					return nil, err
				}
				values = append(values, ref)
			}
			variants = append(variants, Variant{Name: name, Values: values})
		}
		return NewEnum(variants, meta), readTail(r, hdr, 2)
	case typeKindKeyRef:
		level, err := readSmallUInt(r)
		if err != nil {
			return nil, err
		}
		if level > 0xFFFFFFFF {
			return nil, common.New(common.KindStructure, "key-ref level %d out of range", level)
		}
		return NewKeyRef(uint32(level), meta), readTail(r, hdr, 2)
	case typeKindRange:
		element, err := readRef(r)
		if err != nil {
			return nil, err
		}
		inclusion, err := readSmallUInt(r)
		if err != nil {
			return nil, err
		}
		if inclusion > uint64(Supplied) {
			return nil, common.New(common.KindStructure, "unknown range inclusion %d", inclusion)
		}
		allowEmpty, err := codec.ReadBool(r)
		if err != nil {
			return nil, err
		}
		return NewRange(element, Inclusion(inclusion), allowEmpty, meta), readTail(r, hdr, 4)
	default:
		return nil, common.New(common.KindStructure, "unknown type kind %d", hdr.Ordinal)
	}
}

// WriteTypeContainer serializes a finalized container: a 2-sequence of
// (the (identifier, type) entry list) and (the root index).
func WriteTypeContainer(w *codec.Writer, c *TypeContainer) error {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(c.entries))})
	for _, e := range c.entries {
		w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
		w.WriteUnicode(e.id.String())
		if err := WriteType(w, e.typ); err != nil {
			return err
		}
	}
	return writeRef(w, c.root)
}

// ReadTypeContainer deserializes a container written by
// WriteTypeContainer, re-checking the root and every cross-reference
// against the table length.
func ReadTypeContainer(r *codec.Reader) (*TypeContainer, error) {
	if err := expectSeqLen(r, 2); err != nil {
		return nil, err
	}
	n, err := readSeqLen(r)
	if err != nil {
		return nil, err
	}
	entries := make([]entry, 0, n)
	for i := uint32(0); i < n; i++ {
		if err := expectSeqLen(r, 2); err != nil {
			return nil, err
		}
		id, err := readIdentifier(r)
		if err != nil {
			return nil, err
		}
		typ, err := ReadType(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{id: id, typ: typ})
	}
	root, err := readRef(r)
	if err != nil {
		return nil, err
	}
	c := &TypeContainer{entries: entries, root: root}
	if _, err := c.Resolve(root); err != nil {
		return nil, err
	}
	for _, e := range entries {
		for _, ref := range e.typ.TypeRefs() {
			if _, err := c.Resolve(*ref); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func writeMeta(w *codec.Writer, m Meta) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	if doc, ok := m.Doc(); ok {
		w.WriteOptionPresent()
		w.WriteUnicode(doc)
	} else {
		w.WriteOptionAbsent()
	}
	implements := m.Implements()
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: uint32(len(implements))})
	for _, id := range implements {
		w.WriteUuid(id)
	}
}

func readMeta(r *codec.Reader) (Meta, error) {
	if err := expectSeqLen(r, 2); err != nil {
		return Meta{}, err
	}
	var doc string
	present, err := codec.ReadOptionPresence(r)
	if err != nil {
		return Meta{}, err
	}
	if present {
		doc, err = codec.ReadUnicode(r)
		if err != nil {
			return Meta{}, err
		}
	}
	n, err := readSeqLen(r)
	if err != nil {
		return Meta{}, err
	}
	var implements []uuid.UUID
	for i := uint32(0); i < n; i++ {
		id, err := codec.ReadUuid(r)
		if err != nil {
			return Meta{}, err
		}
		implements = append(implements, id)
	}
	return NewMeta(doc, implements)
}

func writeRef(w *codec.Writer, ref TypeRef) error {
	idx, ok := ref.Index()
	if !ok {
		id, _ := ref.Identifier()
		return common.New(common.KindStructure, "identifier type ref %q must be resolved to numerical form before serialization", id)
	}
	return w.WriteUInt(big.NewInt(int64(idx)))
}

func readRef(r *codec.Reader) (TypeRef, error) {
	idx, err := readSmallUInt(r)
	if err != nil {
		return TypeRef{}, err
	}
	if idx > 0xFFFFFFFF {
		return TypeRef{}, common.New(common.KindStructure, "type ref index %d out of u32 range", idx)
	}
	return NumericalRef(uint32(idx)), nil
}

func writeBigRange(w *codec.Writer, rng BigIntRange) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	w.WriteSInt(rng.Start)
	w.WriteSInt(rng.End)
}

func readBigRange(r *codec.Reader) (BigIntRange, error) {
	if err := expectSeqLen(r, 2); err != nil {
		return BigIntRange{}, err
	}
	start, err := codec.ReadSInt(r)
	if err != nil {
		return BigIntRange{}, err
	}
	end, err := codec.ReadSInt(r)
	if err != nil {
		return BigIntRange{}, err
	}
	return NewBigIntRange(start, end)
}

func writeU64Range(w *codec.Writer, rng common.Range[uint64]) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 2})
	writeSmallUInt(w, rng.Start)
	writeSmallUInt(w, rng.End)
}

func readU64Range(r *codec.Reader) (common.Range[uint64], error) {
	if err := expectSeqLen(r, 2); err != nil {
		return common.Range[uint64]{}, err
	}
	start, err := readSmallUInt(r)
	if err != nil {
		return common.Range[uint64]{}, err
	}
	end, err := readSmallUInt(r)
	if err != nil {
		return common.Range[uint64]{}, err
	}
	return common.NewRange(start, end)
}

func readInt8Range(r *codec.Reader) (common.Range[int8], error) {
	if err := expectSeqLen(r, 2); err != nil {
		return common.Range[int8]{}, err
	}
	start, err := readInt8(r)
	if err != nil {
		return common.Range[int8]{}, err
	}
	end, err := readInt8(r)
	if err != nil {
		return common.Range[int8]{}, err
	}
	return common.NewRange(start, end)
}

func readInt8(r *codec.Reader) (int8, error) {
	v, err := codec.ReadSInt(r)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() || v.Int64() < -128 || v.Int64() > 127 {
		return 0, common.New(common.KindStructure, "value %s out of i8 range", v)
	}
	return int8(v.Int64()), nil
}

func writeFloatFlags(w *codec.Writer, f FloatFlags) {
	w.WriteContentDescription(codec.MajorSeq, codec.ContentDescription{Embedded: 6})
	for _, b := range [6]bool{f.PositiveZero, f.NegativeZero, f.NaN, f.PositiveInfinity, f.NegativeInfinity, f.Subnormal} {
		w.WriteBool(b)
	}
}

func readFloatFlags(r *codec.Reader) (FloatFlags, error) {
	if err := expectSeqLen(r, 6); err != nil {
		return FloatFlags{}, err
	}
	var bits [6]bool
	for i := range bits {
		b, err := codec.ReadBool(r)
		if err != nil {
			return FloatFlags{}, err
		}
		bits[i] = b
	}
	return FloatFlags{
		PositiveZero:     bits[0],
		NegativeZero:     bits[1],
		NaN:              bits[2],
		PositiveInfinity: bits[3],
		NegativeInfinity: bits[4],
		Subnormal:        bits[5],
	}, nil
}

func writeSmallUInt(w *codec.Writer, v uint64) {
	_ = w.WriteUInt(new(big.Int).SetUint64(v))
}

func readSmallUInt(r *codec.Reader) (uint64, error) {
	v, err := codec.ReadUInt(r)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, common.New(common.KindStructure, "value %s out of u64 range", v)
	}
	return v.Uint64(), nil
}

func readDirection(r *codec.Reader) (Direction, error) {
	v, err := readSmallUInt(r)
	if err != nil {
		return 0, err
	}
	if v > uint64(Descending) {
		return 0, common.New(common.KindStructure, "unknown sort direction %d", v)
	}
	return Direction(v), nil
}

func readIdentifier(r *codec.Reader) (common.Identifier, error) {
	s, err := codec.ReadUnicode(r)
	if err != nil {
		return common.Identifier{}, err
	}
	return common.NewIdentifier(s)
}

func readSeqLen(r *codec.Reader) (uint32, error) {
	return readSeqHeader(r)
}

func expectSeqLen(r *codec.Reader, want uint32) error {
	n, err := readSeqHeader(r)
	if err != nil {
		return err
	}
	if n != want {
		return common.New(common.KindStructure, "expected a %d-sequence, got %d values", want, n)
	}
	return nil
}

// readTail verifies the enum header declared exactly the value count
// this implementation writes for the kind. Foreign encoders may append
// extension values; those are skipped, mirroring the data-path enum
// rule (spec §4.2 Enum).
func readTail(r *codec.Reader, hdr codec.EnumHeader, declared uint32) error {
	if hdr.NumberOfValues < declared {
		return common.New(common.KindStructure, "type kind %d needs %d values, data has %d", hdr.Ordinal, declared, hdr.NumberOfValues)
	}
	for i := declared; i < hdr.NumberOfValues; i++ {
		if err := codec.SkipValue(r); err != nil {
			return err
		}
	}
	return nil
}
