package schema

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// entry is one (Identifier, Type) slot of a finalized TypeContainer.
type entry struct {
	id  common.Identifier
	typ Type
}

// TypeContainer owns a flat, numerically indexed table of types plus a
// root TypeRef. It is the arena-and-index stand-in for the source's
// reference-counted, lifetime-bound type graph (spec §3.3, §9 "Lifetimes
// and borrowing of the type graph"): every cross-reference inside a
// finalized container is a TypeRef::Numerical(i) with i < len(entries),
// so ownership can never cycle — only the key-ref mechanism permits
// cyclic semantic references, and that happens entirely at the byte
// level, not through the container.
//
// A TypeContainer is immutable once built and may be shared read-only
// across concurrent callers; each caller supplies its own reader and
// Context (spec §5).
type TypeContainer struct {
	entries []entry
	root    TypeRef
}

// MaybeType returns the Type a TypeRef addresses, or ok=false if ref is
// out of bounds. An identifier ref (such as the one SchemaBuilder.Add
// returns) is looked up by the identifier its type was registered under.
func (c *TypeContainer) MaybeType(ref TypeRef) (Type, bool) {
	if id, isIdent := ref.Identifier(); isIdent {
		for _, e := range c.entries {
			if e.id.String() == id {
				return e.typ, true
			}
		}
		return nil, false
	}
	idx, ok := ref.Index()
	if !ok || int(idx) >= len(c.entries) {
		return nil, false
	}
	return c.entries[idx].typ, true
}

// Resolve is MaybeType with a ReferenceError instead of a bool, the
// shape validate.Context.Resolve needs.
func (c *TypeContainer) Resolve(ref TypeRef) (Type, error) {
	typ, ok := c.MaybeType(ref)
	if !ok {
		return nil, common.New(common.KindReference, "type reference %v does not resolve in this container", ref)
	}
	return typ, nil
}

// Identifier returns the name a resolved TypeRef was registered under.
func (c *TypeContainer) Identifier(ref TypeRef) (common.Identifier, bool) {
	idx, ok := ref.Index()
	if !ok || int(idx) >= len(c.entries) {
		return common.Identifier{}, false
	}
	return c.entries[idx].id, true
}

// Root returns the container's entry-point TypeRef.
func (c *TypeContainer) Root() TypeRef {
	return c.root
}

// Len returns the number of types the container holds.
func (c *TypeContainer) Len() int {
	return len(c.entries)
}

// HashType feeds a deterministic fingerprint of the type into h: the
// type is serialized (with its metadata reduced to what info retains)
// and hashed, then every referenced type is hashed the same way, then
// the number of references is written as a u64. The serialized form
// includes the numerical table index of every referenced type, so the
// digest depends on the types, their dependency graph at that
// information level, and where the dependencies sit in the table
// (spec §6.3 hash_type).
func (c *TypeContainer) HashType(ref TypeRef, info Information, h hash.Hash) error {
	typ, err := c.Resolve(ref)
	if err != nil {
		return err
	}
	w := codec.NewWriter()
	if err := writeTypeWithMeta(w, typ, typ.Meta().reduce(info)); err != nil {
		return err
	}
	if _, err := h.Write(w.Bytes()); err != nil {
		return err
	}
	refs := typ.TypeRefs()
	for _, dep := range refs {
		if err := c.HashType(*dep, info, h); err != nil {
			return err
		}
	}
	var count [8]byte
	binary.LittleEndian.PutUint64(count[:], uint64(len(refs)))
	_, err = h.Write(count[:])
	return err
}

// TypeHash is HashType with the default hasher, returning the 64-bit
// digest directly.
func (c *TypeContainer) TypeHash(ref TypeRef, info Information) (uint64, error) {
	d := xxhash.New()
	if err := c.HashType(ref, info, d); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}
