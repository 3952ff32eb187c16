// Package schema implements the liquesco type algebra: the AnyType
// variants (spec §3.2, §4.2), TypeRef, the flat TypeContainer and the
// SchemaBuilder that resolves identifiers into it (spec §3.3, §4.5).
package schema

// Ordering is the result of a Type's Compare: negative means the first
// value sorts before the second, zero means equal, positive means after
// — the same convention as the standard library's cmp.Compare.
type Ordering = int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)
