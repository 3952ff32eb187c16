package schema

import (
	"reflect"
	"sort"

	"github.com/cronosun/liquesco-go/common"
)

// SchemaBuilder collects (Identifier, Type) entries under construction
// and resolves them into an immutable TypeContainer on Finish (spec
// §4.5).
type SchemaBuilder struct {
	byID map[string]Type
}

// NewSchemaBuilder returns an empty builder.
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{byID: make(map[string]Type)}
}

// Add registers typ under id, returning an IdentifierRef that addresses
// it. Finish rewrites the refs held inside registered types to
// Numerical ones; the returned ref itself stays an IdentifierRef, which
// the finished TypeContainer resolves by name. Registering the same
// id twice is only allowed if both types are structurally identical
// (spec §4.5 step 4: "reject duplicate IDs that resolve to structurally
// different AnyTypes; allow idempotent duplicates").
func (b *SchemaBuilder) Add(id string, typ Type) (TypeRef, error) {
	if existing, ok := b.byID[id]; ok {
		if !reflect.DeepEqual(existing, typ) {
			return TypeRef{}, common.New(common.KindStructure, "identifier %q already registered with a different type", id)
		}
		return IdentifierRef(id), nil
	}
	b.byID[id] = typ
	return IdentifierRef(id), nil
}

// Finish assigns every registered identifier a stable numerical index
// (lexicographic order, per spec §4.5 step 1), rewrites every TypeRef
// reachable from any registered type or from root to its Numerical
// form, and returns the resulting immutable TypeContainer.
func (b *SchemaBuilder) Finish(root TypeRef) (*TypeContainer, error) {
	ids := make([]string, 0, len(b.byID))
	for id := range b.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	indexOf := make(map[string]uint32, len(ids))
	for i, id := range ids {
		indexOf[id] = uint32(i)
	}

	entries := make([]entry, len(ids))
	for i, id := range ids {
		identifier, err := common.NewIdentifier(id)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{id: identifier, typ: b.byID[id]}
	}

	for _, e := range entries {
		for _, refPtr := range e.typ.TypeRefs() {
			resolved, err := refPtr.resolveAgainst(indexOf)
			if err != nil {
				return nil, err
			}
			*refPtr = resolved
		}
	}

	resolvedRoot, err := root.resolveAgainst(indexOf)
	if err != nil {
		return nil, err
	}

	return &TypeContainer{entries: entries, root: resolvedRoot}, nil
}
