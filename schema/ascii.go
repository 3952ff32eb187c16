package schema

import (
	"bytes"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

const (
	minCodeRangeEntries = 2
	maxCodeRangeEntries = 64
	maxAsciiCode        = 128
)

// CodePair is one (min, maxExclusive) entry of a CodeRange.
type CodePair struct {
	Min          uint8
	MaxExclusive uint8
}

// CodeRange is an ascending, non-overlapping set of byte ranges every
// Ascii byte must fall into (spec §3.2): 2-64 strictly ascending pairs,
// each maxExclusive <= 128.
type CodeRange struct {
	pairs []CodePair
}

// NewCodeRange validates the invariants and returns a CodeRange.
func NewCodeRange(pairs []CodePair) (CodeRange, error) {
	if len(pairs) < minCodeRangeEntries || len(pairs) > maxCodeRangeEntries {
		return CodeRange{}, common.New(common.KindStructure, "code range has %d entries, must have between %d and %d", len(pairs), minCodeRangeEntries, maxCodeRangeEntries)
	}
	prevMax := -1
	for _, p := range pairs {
		if p.MaxExclusive > maxAsciiCode {
			return CodeRange{}, common.New(common.KindStructure, "code range max %d exceeds %d", p.MaxExclusive, maxAsciiCode)
		}
		if int(p.Min) >= int(p.MaxExclusive) {
			return CodeRange{}, common.New(common.KindStructure, "code range pair (%d, %d) is not ascending", p.Min, p.MaxExclusive)
		}
		if int(p.Min) <= prevMax {
			return CodeRange{}, common.New(common.KindStructure, "code range pairs must be strictly ascending and non-overlapping")
		}
		prevMax = int(p.MaxExclusive) - 1
	}
	return CodeRange{pairs: pairs}, nil
}

// Pairs returns the validated (min, maxExclusive) entries in order.
func (c CodeRange) Pairs() []CodePair {
	return c.pairs
}

// Contains reports whether b falls into at least one pair.
func (c CodeRange) Contains(b byte) bool {
	for _, p := range c.pairs {
		if b >= p.Min && b < p.MaxExclusive {
			return true
		}
	}
	return false
}

// TAscii validates every byte against a CodeRange; length is the raw
// byte count; comparison is lexicographic (spec §4.2 Ascii).
type TAscii struct {
	meta   Meta
	Length common.Range[uint64]
	Codes  CodeRange
}

func NewAscii(length common.Range[uint64], codes CodeRange, meta Meta) *TAscii {
	return &TAscii{meta: meta, Length: length, Codes: codes}
}

func (t *TAscii) Validate(ctx Context) error {
	start := ctx.Reader().Clone()
	b, err := codec.ReadAscii(ctx.Reader())
	if err != nil {
		return err
	}
	if err := canonicalCheck(ctx, start, func(w *codec.Writer) { w.WriteAscii(b) }); err != nil {
		return err
	}
	if !t.Length.Contains(uint64(len(b))) {
		return common.New(common.KindConstraint, "ascii length %d outside range [%d, %d]", len(b), t.Length.Start, t.Length.End)
	}
	for _, c := range b {
		if !t.Codes.Contains(c) {
			return common.New(common.KindConstraint, "ascii byte %d not within any declared code range", c)
		}
	}
	return nil
}

func (t *TAscii) Compare(ctx Context, r1, r2 *codec.Reader) (Ordering, error) {
	a, err := codec.ReadAscii(r1)
	if err != nil {
		return 0, err
	}
	b, err := codec.ReadAscii(r2)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(a, b), nil
}

func (t *TAscii) TypeRefs() []*TypeRef { return nil }
func (t *TAscii) Meta() Meta           { return t.meta }
