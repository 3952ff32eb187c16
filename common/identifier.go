package common

import "strings"

const (
	minSegments    = 1
	maxSegments    = 12
	minSegmentLen  = 1
	maxSegmentLen  = 30
	identSeparator = "_"
)

// Identifier is a schema type name: 1-12 segments joined by "_", each
// segment 1-30 bytes of [a-z0-9] (spec §3.2).
type Identifier struct {
	segments []string
}

// NewIdentifier parses and validates s as an Identifier.
func NewIdentifier(s string) (Identifier, error) {
	segments := strings.Split(s, identSeparator)
	if len(segments) < minSegments || len(segments) > maxSegments {
		return Identifier{}, New(KindStructure,
			"identifier %q has %d segments, must have between %d and %d", s, len(segments), minSegments, maxSegments)
	}
	for _, seg := range segments {
		if len(seg) < minSegmentLen || len(seg) > maxSegmentLen {
			return Identifier{}, New(KindStructure,
				"identifier %q segment %q has invalid length %d, must be between %d and %d", s, seg, len(seg), minSegmentLen, maxSegmentLen)
		}
		for i := 0; i < len(seg); i++ {
			c := seg[i]
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
				return Identifier{}, New(KindStructure,
					"identifier %q segment %q contains invalid byte %q, only a-z0-9 allowed", s, seg, c)
			}
		}
	}
	return Identifier{segments: segments}, nil
}

// String renders the identifier back to its canonical "_"-joined form.
func (id Identifier) String() string {
	return strings.Join(id.segments, identSeparator)
}

// Equal compares two identifiers by their normalized string form.
func (id Identifier) Equal(other Identifier) bool {
	return id.String() == other.String()
}
