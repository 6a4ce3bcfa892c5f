//go:build cgo

package compress

import (
	"fmt"

	"github.com/arloliu/strview"
	"github.com/valyala/gozstd"
)

// Compress encodes src as a single zstd frame into dst.
func (c ZstdCompressor) Compress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	buf := dst.Bytes()
	out := gozstd.CompressLevel(buf[:0], src.Bytes(), c.Level())

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

	buf := dst.Bytes()
	out, err := gozstd.Decompress(buf[:0], src.Bytes())
	if err != nil {
		return strview.Invalid, fmt.Errorf("zstd decompress: %w", err)
	}

	return landIn(buf, out, "zstd decompress")
}
