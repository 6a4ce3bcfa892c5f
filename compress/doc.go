// Package compress compresses and decompresses views into caller-owned
// segments.
//
// Every codec follows the same contract as the rest of strview: the caller
// owns the memory. Compress and Decompress write into the destination
// segment and return a View over the bytes they produced. Nothing is
// allocated for the result, and a destination that cannot hold the whole
// result is rejected with errs.ErrShortBuffer instead of being truncated.
//
// Supported algorithms:
//   - None: bounded copy
//   - Zstd: best ratio, configurable level
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Size the destination with MaxCompressedLen:
//
//	codec, _ := compress.GetCodec(format.CompressionS2)
//	buf := make([]byte, compress.MaxCompressedLen(format.CompressionS2, src.Len()))
//	packed, err := codec.Compress(strview.NewSegment(buf), src)
//	if err != nil {
//		return err
//	}
//
// Decompression needs a destination large enough for the original payload,
// which the caller records alongside the compressed bytes.
//
// Zstd uses github.com/valyala/gozstd when cgo is enabled and the pure Go
// github.com/klauspost/compress/zstd otherwise. Both produce standard zstd
// frames, so data written by one build decodes with the other.
package compress
