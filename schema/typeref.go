package schema

import "github.com/cronosun/liquesco-go/common"

// TypeRef addresses an entry in a schema's type table (spec §3.3). While
// a schema is being built, a ref may be an Identifier; SchemaBuilder.Finish
// rewrites every identifier ref to a Numerical one, and a finalized
// TypeContainer never holds anything but Numerical refs.
type TypeRef struct {
	numerical  bool
	index      uint32
	identifier string
}

// NumericalRef builds a TypeRef that addresses the i-th entry of a
// finalized type table.
func NumericalRef(i uint32) TypeRef {
	return TypeRef{numerical: true, index: i}
}

// IdentifierRef builds a TypeRef naming an identifier. Types inside a
// finalized container never hold one, but TypeContainer lookups accept
// it and resolve it by name.
func IdentifierRef(id string) TypeRef {
	return TypeRef{identifier: id}
}

// IsNumerical reports whether the ref has already been resolved.
func (r TypeRef) IsNumerical() bool {
	return r.numerical
}

// Index returns the numerical index, if resolved.
func (r TypeRef) Index() (uint32, bool) {
	return r.index, r.numerical
}

// Identifier returns the identifier name, if unresolved.
func (r TypeRef) Identifier() (string, bool) {
	return r.identifier, !r.numerical
}

// resolveAgainst rewrites an identifier ref into a numerical one using
// indexOf, failing with a ReferenceError if the identifier is unknown.
func (r TypeRef) resolveAgainst(indexOf map[string]uint32) (TypeRef, error) {
	if r.numerical {
		return r, nil
	}
	idx, ok := indexOf[r.identifier]
	if !ok {
		return TypeRef{}, common.New(common.KindReference, "unknown type identifier %q", r.identifier)
	}
	return NumericalRef(idx), nil
}
