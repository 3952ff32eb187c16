package schema

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// TRootMap is the schema's entry point container: a map of anchored
// entries alongside a root value that may reference them. Wire layout
// is an outer 2-sequence of (the map entries, exactly as TMap encodes
// them) and (the root value). The entries' key-ref frame stays active
// while validating the root — the root is the one position that always
// sees its own map's keys at level 0 — and is popped only once the root
// has been validated (spec §4.2 RootMap).
type TRootMap struct {
	meta      Meta
	Key       TypeRef
	Value     TypeRef
	Root      TypeRef
	Length    common.Range[uint64]
	Direction Direction
}

func NewRootMap(key, value, root TypeRef, length common.Range[uint64], direction Direction, meta Meta) *TRootMap {
	return &TRootMap{meta: meta, Key: key, Value: value, Root: root, Length: length, Direction: direction}
}

func (t *TRootMap) asMap() *TMap {
	return &TMap{meta: t.meta, Key: t.Key, Value: t.Value, Length: t.Length, Direction: t.Direction, Anchors: true}
}

func (t *TRootMap) Validate(ctx Context) error {
	outer, err := readSeqHeader(ctx.Reader())
	if err != nil {
		return err
	}
	if outer != 2 {
		return common.New(common.KindStructure, "root map must be a 2-sequence of (entries, root), got %d values", outer)
	}
	if _, err := t.asMap().validateEntries(ctx, true); err != nil {
		return err
	}
	rootType, err := ctx.Resolve(t.Root)
	if err != nil {
		return err
	}
	if err := rootType.Validate(ctx); err != nil {
		return err
	}
	return ctx.PopKeyRefFrame()
}

func (t *TRootMap) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	o1, err := readSeqHeader(r1)
	if err != nil {
		return 0, err
	}
	if o1 != 2 {
		return 0, common.New(common.KindStructure, "root map must be a 2-sequence, got %d values", o1)
	}
	o2, err := readSeqHeader(r2)
	if err != nil {
		return 0, err
	}
	if o2 != 2 {
		return 0, common.New(common.KindStructure, "root map must be a 2-sequence, got %d values", o2)
	}
	cmp, err := t.asMap().compareEntries(ctx, r1, r2)
	if err != nil {
		return 0, err
	}
	if cmp != Equal {
		return cmp, nil
	}
	rootType, err := ctx.Resolve(t.Root)
	if err != nil {
		return 0, err
	}
	return rootType.Compare(ctx, r1, r2)
}

func (t *TRootMap) TypeRefs() []*TypeRef { return []*TypeRef{&t.Key, &t.Value, &t.Root} }
func (t *TRootMap) Meta() Meta           { return t.meta }
