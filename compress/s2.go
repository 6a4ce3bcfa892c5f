package compress

import (
	"fmt"

	"github.com/arloliu/strview"
	"github.com/klauspost/compress/s2"
)

// S2Compressor uses the S2 block format (Snappy compatible on decode).
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress requires dst to hold s2.MaxEncodedLen(src.Len()) bytes so the
// encoder never allocates.
func (c S2Compressor) Compress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	bound := s2.MaxEncodedLen(src.Len())
	if bound < 0 || bound > dst.Len() {
		return strview.Invalid, shortBuffer("s2 compress", bound, dst.Len())
	}

	buf := dst.Bytes()
	out := s2.Encode(buf, src.Bytes())

	return landIn(buf, out, "s2 compress")
}

// Decompress checks the encoded length header against dst before decoding.
func (c S2Compressor) Decompress(dst strview.Segment, src strview.View) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}

	n, err := s2.DecodedLen(src.Bytes())
	if err != nil {
		return strview.Invalid, fmt.Errorf("s2 decompress: %w", err)
	}
	if n > dst.Len() {
		return strview.Invalid, shortBuffer("s2 decompress", n, dst.Len())
	}

	buf := dst.Bytes()
	out, err := s2.Decode(buf, src.Bytes())
	if err != nil {
		return strview.Invalid, fmt.Errorf("s2 decompress: %w", err)
	}

	return landIn(buf, out, "s2 decompress")
}
