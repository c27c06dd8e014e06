package stream

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdSource decompresses a zstd stream as it is drained.
type ZstdSource struct {
	dec *zstd.Decoder
}

func NewZstdSource(r io.Reader, opts ...zstd.DOption) (*ZstdSource, error) {
	dec, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("stream: zstd: %w", err)
	}
	return &ZstdSource{dec: dec}, nil
}

func (z *ZstdSource) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

// Close releases the decoder goroutines.
func (z *ZstdSource) Close() {
	z.dec.Close()
}
