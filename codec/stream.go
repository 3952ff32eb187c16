// Zstd stream helpers for callers that persist encoded schemas or
// values to disk. The core codec is otherwise oblivious to compression.

package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewCompressedWriter wraps w in a zstd encoder. The returned closer
// must be called (e.g. deferred) to flush the final frame.
func NewCompressedWriter(w io.Writer) (io.Writer, func() error, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, nil, err
	}
	return enc, enc.Close, nil
}

// NewCompressedReader wraps r in a zstd decoder. The returned closer
// releases the decoder's background resources.
func NewCompressedReader(r io.Reader) (io.Reader, func(), error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return dec.IOReadCloser(), dec.Close, nil
}
