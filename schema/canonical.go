package schema

import (
	"bytes"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
)

// canonicalCheck enforces the strict-canonical read mode (spec §6.1):
// after a value has been decoded, re-encode it and require the wire
// bytes to match the canonical encoding exactly. start is a clone of
// the reader taken before decoding; write must produce the canonical
// encoding of the decoded value. A no-op unless Config.Canonical is
// set — the default read mode is lenient.
func canonicalCheck(ctx Context, start *codec.Reader, write func(*codec.Writer)) error {
	if !ctx.Config().Canonical {
		return nil
	}
	w := codec.NewWriter()
	write(w)
	canonical := w.Bytes()
	consumed := int(ctx.Reader().Offset() - start.Offset())
	actual, err := start.ReadSlice(consumed)
	if err != nil {
		return err
	}
	if !bytes.Equal(actual, canonical) {
		return common.New(common.KindCodec, "non-minimal encoding rejected in canonical mode (%d bytes on the wire, canonical form has %d)", consumed, len(canonical))
	}
	return nil
}
