package schema

import "github.com/cronosun/liquesco-go/codec"

// Type is the capability set every AnyType variant implements (spec §2,
// §9 "Polymorphic Type capability set"): validate bytes against the
// type's constraints, compare two encoded values, expose the child
// TypeRefs the builder must rewrite on Finish, and carry Meta. AnyType
// is the tagged union spec.md describes; in Go that union is simply
// "any value implementing Type", dispatched with a type switch where
// needed (e.g. the validator's extended-diagnostics preview) instead of
// a vtable.
type Type interface {
	// Validate decodes and checks one value of this type from
	// ctx.Reader(), per the three-step shape in spec §4.2: decode the
	// header/content, check constraints/delegate to children, and
	// ensure every byte the type claims has been consumed.
	Validate(ctx Context) error

	// Compare decodes one value of this type from each of r1 and r2
	// and returns their Ordering. On Equal, both readers must have
	// advanced exactly as far as Validate would have (spec §4.4).
	Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error)

	// TypeRefs returns pointers to every child TypeRef this type owns,
	// in a stable order, so SchemaBuilder.Finish can rewrite identifier
	// refs to numerical ones in place.
	TypeRefs() []*TypeRef

	// Meta returns the type's documentation/implements envelope.
	Meta() Meta
}
