package schema

import (
	"github.com/cronosun/liquesco-go/common"
	"github.com/google/uuid"
)

const (
	minDocBytes   = 1
	maxDocBytes   = 4000
	maxImplements = 255
)

// Information selects how much of a type's metadata participates in an
// operation (serialization for hashing): Type strips all metadata,
// Technical keeps the implements UUIDs but drops documentation, Full
// keeps everything.
type Information int

const (
	InformationType Information = iota
	InformationTechnical
	InformationFull
)

// Meta is the documentation/protocol-identity envelope every AnyType
// variant carries (spec §3.2): an optional bounded doc string and an
// ordered, de-duplicated list of "implements" UUIDs.
type Meta struct {
	doc        string
	hasDoc     bool
	implements []uuid.UUID
}

// EmptyMeta is a Meta with neither documentation nor implements.
func EmptyMeta() Meta {
	return Meta{}
}

// NewMeta validates doc (if non-empty, must be 1-4000 UTF-8 bytes) and
// implements (if non-empty, must be 1-255 entries, de-duplicated here in
// first-seen order).
func NewMeta(doc string, implements []uuid.UUID) (Meta, error) {
	m := Meta{}
	if doc != "" {
		if len(doc) < minDocBytes || len(doc) > maxDocBytes {
			return Meta{}, common.New(common.KindStructure, "meta doc is %d bytes, must be between %d and %d", len(doc), minDocBytes, maxDocBytes)
		}
		m.doc = doc
		m.hasDoc = true
	}
	if len(implements) > 0 {
		seen := make(map[uuid.UUID]bool, len(implements))
		deduped := make([]uuid.UUID, 0, len(implements))
		for _, id := range implements {
			if seen[id] {
				continue
			}
			seen[id] = true
			deduped = append(deduped, id)
		}
		if len(deduped) > maxImplements {
			return Meta{}, common.New(common.KindStructure, "meta has %d distinct implements, max is %d", len(deduped), maxImplements)
		}
		m.implements = deduped
	}
	return m, nil
}

// Doc returns the documentation string and whether one is present.
func (m Meta) Doc() (string, bool) {
	return m.doc, m.hasDoc
}

// Implements returns the ordered, de-duplicated list of implements UUIDs.
func (m Meta) Implements() []uuid.UUID {
	return m.implements
}

// reduce strips the metadata down to what info retains.
func (m Meta) reduce(info Information) Meta {
	switch info {
	case InformationType:
		return Meta{}
	case InformationTechnical:
		return Meta{implements: m.implements}
	default:
		return m
	}
}
