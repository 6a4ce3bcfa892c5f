package compress

import (
	"fmt"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/errs"
	"github.com/arloliu/strview/format"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses a view into a caller-owned segment.
type Compressor interface {
	// Compress writes the compressed form of src at the start of dst and
	// returns a view over the written bytes.
	//
	// An empty src yields an empty view and writes nothing. When dst cannot
	// hold the result the error wraps errs.ErrShortBuffer and the returned
	// view is Invalid.
	Compress(dst strview.Segment, src strview.View) (strview.View, error)
}

// Decompressor restores a view produced by the matching Compressor.
type Decompressor interface {
	// Decompress writes the original bytes of src at the start of dst and
	// returns a view over them. Corrupt input is reported as an error; an
	// undersized dst wraps errs.ErrShortBuffer.
	Decompress(dst strview.Segment, src strview.View) (strview.View, error)
}

// Codec combines both directions. Built-in codecs are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes one compression run.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Measure compresses src into dst with codec and reports the sizes.
func Measure(codec Codec, algorithm format.CompressionType, dst strview.Segment, src strview.View) (strview.View, CompressionStats, error) {
	out, err := codec.Compress(dst, src)
	if err != nil {
		return strview.Invalid, CompressionStats{}, err
	}

	return out, CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(src.Len()),
		CompressedSize: int64(out.Len()),
	}, nil
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty input. Values below 1.0 mean the data shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// MaxCompressedLen returns the destination capacity that guarantees Compress
// succeeds for n input bytes. It returns -1 for unknown types or inputs too
// large for the codec.
func MaxCompressedLen(compressionType format.CompressionType, n int) int {
	if n < 0 {
		return -1
	}

	switch compressionType {
	case format.CompressionNone:
		return n
	case format.CompressionS2:
		return s2.MaxEncodedLen(n)
	case format.CompressionLZ4:
		return lz4.CompressBlockBound(n)
	case format.CompressionZstd:
		return zstdCompressBound(n)
	default:
		return -1
	}
}

// zstdCompressBound mirrors ZSTD_COMPRESSBOUND from zstd.h.
func zstdCompressBound(n int) int {
	const smallLimit = 128 << 10

	bound := n + n>>8
	if n < smallLimit {
		bound += (smallLimit - n) >> 11
	}

	return bound
}

// CreateCodec builds a new Codec for the compression type. Options only
// affect Zstd; target names the caller's payload in error messages.
func CreateCodec(compressionType format.CompressionType, target string, opts ...ZstdOption) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		c, err := NewZstdCompressor(opts...)
		if err != nil {
			return nil, fmt.Errorf("%s codec: %w", target, err)
		}

		return c, nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%s codec %s: %w", target, compressionType, errs.ErrUnsupportedCompression)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: ZstdCompressor{level: DefaultZstdLevel},
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// prepare validates the common arguments. done is true when src is empty and
// the empty result has already been decided.
func prepare(dst strview.Segment, src strview.View) (done bool, err error) {
	if !src.IsValid() {
		return false, errs.ErrInvalidView
	}
	if !dst.IsUsable() {
		return false, errs.ErrUnusableSegment
	}

	return src.IsEmpty(), nil
}

func shortBuffer(op string, need, have int) error {
	return fmt.Errorf("%s needs %d bytes, segment has %d: %w", op, need, have, errs.ErrShortBuffer)
}

// landIn makes sure out ends up at the start of buf. Codecs that append to
// buf[:0] write in place while the result fits; when they had to grow, out
// lives elsewhere and is copied back if it still fits.
func landIn(buf, out []byte, op string) (strview.View, error) {
	if len(out) > len(buf) {
		return strview.Invalid, shortBuffer(op, len(out), len(buf))
	}
	if len(out) > 0 && &out[0] != &buf[0] {
		copy(buf, out)
	}

	return strview.FromBytes(buf[:len(out)]), nil
}
