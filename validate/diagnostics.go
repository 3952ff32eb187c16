package validate

import (
	"fmt"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/dustin/go-humanize"
)

const previewLen = 10

// enrich attaches extended diagnostics to err without changing its Kind
// (spec §4.3 step 2, §7): the byte offset where validation failed, the
// content description at that offset (best-effort — the position may
// not be a value boundary), and a short hex preview of the next bytes.
// Never returns an error of its own; a failed best-effort decode just
// leaves those fields zero.
func enrich(err error, reader *codec.Reader) error {
	offset := reader.Offset()
	preview := previewBytes(reader, previewLen)

	diag := common.Diagnostics{
		Offset:  offset,
		Preview: preview,
	}
	if clone := reader.Clone(); clone != nil {
		if h, herr := codec.ReadHeader(clone); herr == nil {
			if desc, derr := codec.ReadContentDescription(clone, h); derr == nil {
				diag.SelfLength = desc.SelfLength
				diag.Embedded = desc.Embedded
			}
		}
	}
	diag.DecodedPreview = describe(diag)
	return common.WithDiagnostics(err, diag)
}

func previewBytes(reader *codec.Reader, n int) []byte {
	clone := reader.Clone()
	if n > clone.Remaining() {
		n = clone.Remaining()
	}
	if n <= 0 {
		return nil
	}
	b, err := clone.ReadSlice(n)
	if err != nil {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

func describe(diag common.Diagnostics) string {
	if len(diag.Preview) == 0 {
		return "no bytes remaining at failure offset"
	}
	return fmt.Sprintf("%s available, self_length=%s, embedded=%d, next bytes % x",
		humanize.Comma(int64(len(diag.Preview))), humanize.Bytes(diag.SelfLength), diag.Embedded, diag.Preview)
}
