//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/strview"
	"github.com/klauspost/compress/zstd"
)

// The decoder runs without allocations once warmed up, so decoders are pooled.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools maps a zstd level to a *sync.Pool of encoders for it.
var zstdEncoderPools sync.Map

func zstdEncoderPool(level int) *sync.Pool {
	if p, ok := zstdEncoderPools.Load(level); ok {
		return p.(*sync.Pool)
	}

	p := &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}

			return encoder
		},
	}
	actual, _ := zstdEncoderPools.LoadOrStore(level, p)

	return actual.(*sync.Pool)
}

// Compress encodes src as a single zstd frame into dst.
func (c ZstdCompressor) Compress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	pool := zstdEncoderPool(c.Level())
	encoder, _ := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	buf := dst.Bytes()
	out := encoder.EncodeAll(src.Bytes(), buf[:0])

	return landIn(buf, out, "zstd compress")
}

// Decompress decodes a zstd frame into dst.
func (c ZstdCompressor) Decompress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	buf := dst.Bytes()
	out, err := decoder.DecodeAll(src.Bytes(), buf[:0])
	if err != nil {
		return strview.Invalid, fmt.Errorf("zstd decompress: %w", err)
	}

	return landIn(buf, out, "zstd decompress")
}
