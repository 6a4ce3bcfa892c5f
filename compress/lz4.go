package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/errs"
	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps a hash table that is worth reusing between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses the raw LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress requires dst to hold lz4.CompressBlockBound(src.Len()) bytes.
func (c LZ4Compressor) Compress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	bound := lz4.CompressBlockBound(src.Len())
	if bound > dst.Len() {
		return strview.Invalid, shortBuffer("lz4 compress", bound, dst.Len())
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	buf := dst.Bytes()
	n, err := lc.CompressBlock(src.Bytes(), buf)
	if err != nil {
		return strview.Invalid, fmt.Errorf("lz4 compress: %w", err)
	}

	return strview.FromBytes(buf[:n]), nil
}

// Decompress decodes a block into dst. The block carries no decoded size, so
// a dst that is too small is only detected by the decoder.
func (c LZ4Compressor) Decompress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	buf := dst.Bytes()
	n, err := lz4.UncompressBlock(src.Bytes(), buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return strview.Invalid, fmt.Errorf("lz4 decompress: %w: %w", errs.ErrShortBuffer, err)
		}

		return strview.Invalid, fmt.Errorf("lz4 decompress: %w", err)
	}

	return strview.FromBytes(buf[:n]), nil
}
