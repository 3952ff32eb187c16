package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TMap is an ordered collection of (key, value) entries, wire-encoded as
// a Seq of entries where each entry is itself a 2-sequence [key, value]
// (spec §4.2 Map). Keys must be strictly monotonic per Direction, which
// also forbids duplicates. When Anchors is set, a KeyRefInfo frame
// covering the entry count is visible while validating values (and
// popped while validating the key itself, so a key can never reference
// its own map — only outer ones, via level >= 1).
type TMap struct {
	meta      Meta
	Key       TypeRef
	Value     TypeRef
	Length    common.Range[uint64]
	Direction Direction
	Anchors   bool
}

func NewMap(key, value TypeRef, length common.Range[uint64], direction Direction, anchors bool, meta Meta) *TMap {
	return &TMap{meta: meta, Key: key, Value: value, Length: length, Direction: direction, Anchors: anchors}
}

// validateEntries validates the map's entry sequence and returns the
// entry count. If keepFrame is true and Anchors is set, the frame
// covering the entries is left pushed for the caller (TRootMap, which
// also wants it visible while validating the root value) instead of
// being popped here.
func (t *TMap) validateEntries(ctx Context, keepFrame bool) (uint32, error) {
	n, err := readSeqHeader(ctx.Reader())
	if err != nil {
		return 0, err
	}
	if !t.Length.Contains(uint64(n)) {
		return 0, common.New(common.KindConstraint, "map length %d outside range [%d, %d]", n, t.Length.Start, t.Length.End)
	}
	keyType, err := ctx.Resolve(t.Key)
	if err != nil {
		return 0, err
	}
	valueType, err := ctx.Resolve(t.Value)
	if err != nil {
		return 0, err
	}
	if t.Anchors {
		ctx.PushKeyRefFrame(n)
	}
	var prevKey *codec.Reader
	for i := uint32(0); i < n; i++ {
		entryLen, err := readSeqHeader(ctx.Reader())
		if err != nil {
			return 0, err
		}
		if entryLen != 2 {
			return 0, common.New(common.KindStructure, "map entry %d must be a 2-sequence [key, value], got %d values", i, entryLen)
		}
		if t.Anchors {
			if err := ctx.PopKeyRefFrame(); err != nil {
				return 0, err
			}
		}
		keyStart := ctx.Reader().Clone()
		if err := keyType.Validate(ctx); err != nil {
			return 0, err
		}
		if t.Anchors {
			ctx.PushKeyRefFrame(n)
		}
		if prevKey != nil {
			cmp, err := keyType.Compare(ctx, prevKey, keyStart)
			if err != nil {
				return 0, err
			}
			if t.Direction == Ascending {
				if cmp >= Equal {
					return 0, common.New(common.KindStructure, "map key %d is not strictly ascending", i)
				}
			} else {
				if cmp <= Equal {
					return 0, common.New(common.KindStructure, "map key %d is not strictly descending", i)
				}
			}
		}
		prevKey = keyStart
		if err := valueType.Validate(ctx); err != nil {
			return 0, err
		}
	}
	if t.Anchors && !keepFrame {
		if err := ctx.PopKeyRefFrame(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (t *TMap) Validate(ctx Context) error {
	_, err := t.validateEntries(ctx, false)
	return err
}

// compareEntries implements the pairwise (key, value) lexicographic
// ordering from spec §4.2/§4.4: the first differing pair decides the
// result immediately; on an equal common prefix the shorter map is Less.
func (t *TMap) compareEntries(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	n1, err := readSeqHeader(r1)
	if err != nil {
		return 0, err
	}
	n2, err := readSeqHeader(r2)
	if err != nil {
		return 0, err
	}
	keyType, err := ctx.Resolve(t.Key)
	if err != nil {
		return 0, err
	}
	valueType, err := ctx.Resolve(t.Value)
	if err != nil {
		return 0, err
	}
	minN := n1
	if n2 < minN {
		minN = n2
	}
	for i := uint32(0); i < minN; i++ {
		e1, err := readSeqHeader(r1)
		if err != nil {
			return 0, err
		}
		if e1 != 2 {
			return 0, common.New(common.KindStructure, "map entry %d must be a 2-sequence, got %d values", i, e1)
		}
		e2, err := readSeqHeader(r2)
		if err != nil {
			return 0, err
		}
		if e2 != 2 {
			return 0, common.New(common.KindStructure, "map entry %d must be a 2-sequence, got %d values", i, e2)
		}
		kcmp, err := keyType.Compare(ctx, r1, r2)
		if err != nil {
			return 0, err
		}
		if kcmp != Equal {
			return kcmp, nil
		}
		vcmp, err := valueType.Compare(ctx, r1, r2)
		if err != nil {
			return 0, err
		}
		if vcmp != Equal {
			return vcmp, nil
		}
	}
	if n1 < n2 {
		return Less, nil
	}
	if n1 > n2 {
		return Greater, nil
	}
	return Equal, nil
}

func (t *TMap) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	return t.compareEntries(ctx, r1, r2)
}

func (t *TMap) TypeRefs() []*TypeRef { return []*TypeRef{&t.Key, &t.Value} }
func (t *TMap) Meta() Meta           { return t.meta }
