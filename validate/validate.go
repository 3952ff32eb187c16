package validate

import (
	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/cronosun/liquesco-go/schema"
)

// Validate decodes data against rootRef's type in container and reports
// the first mismatch (spec §4.3, §6.3). It is a pure reader: it never
// mutates data and never retries, and it requires data to hold exactly
// one encoded value of that type, no trailing bytes.
func Validate(container *schema.TypeContainer, rootRef schema.TypeRef, config schema.Config, data []byte) error {
	rootType, err := container.Resolve(rootRef)
	if err != nil {
		return err
	}
	reader := codec.NewReader(data)
	ctx := newContext(reader, container, config)

	if err := rootType.Validate(ctx); err != nil {
		if config.ExtendedDiagnostics {
			return enrich(err, reader)
		}
		return err
	}
	if len(ctx.stack) != 0 {
		return common.New(common.KindInternal, "key-ref stack not empty at end of validate (%d frames left)", len(ctx.stack))
	}
	if reader.Remaining() != 0 {
		err := common.New(common.KindStructure, "%d trailing bytes after the validated value", reader.Remaining())
		if config.ExtendedDiagnostics {
			return enrich(err, reader)
		}
		return err
	}
	return nil
}

// Compare decodes one value of ref's type from each of a and b and
// returns their total Ordering (spec §4.4, §6.3). On Equal both readers
// have fully consumed their value — not necessarily the same byte count,
// since extension-tolerant types (struct, enum) may legitimately differ
// in length while comparing equal. Leftover bytes on either side after
// an Equal verdict surface as a structure error rather than a silently
// wrong Ordering. On inequality the read offsets are undefined; the
// comparator may have stopped early.
func Compare(container *schema.TypeContainer, ref schema.TypeRef, a, b []byte) (schema.Ordering, error) {
	typ, err := container.Resolve(ref)
	if err != nil {
		return 0, err
	}
	r1 := codec.NewReader(a)
	r2 := codec.NewReader(b)
	ctx := newContext(r1, container, schema.Config{})

	cmp, err := typ.Compare(ctx, r1, r2)
	if err != nil {
		return 0, err
	}
	if cmp == schema.Equal && (r1.Remaining() != 0 || r2.Remaining() != 0) {
		return 0, common.New(common.KindStructure, "compare returned Equal but a reader was not drained (remaining %d vs %d)",
			r1.Remaining(), r2.Remaining())
	}
	return cmp, nil
}
