package compress

import "github.com/arloliu/strview"

// NoOpCompressor stores bytes as-is. Unlike Segment.Copy it never truncates:
// a destination shorter than the source is an error.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress copies src into dst.
func (c NoOpCompressor) Compress(dst strview.Segment, src strview.View) (strview.View, error) {
	return boundedCopy(dst, src, "copy")
}

// Decompress copies src into dst.
func (c NoOpCompressor) Decompress(dst strview.Segment, src strview.View) (strview.View, error) {
	return boundedCopy(dst, src, "copy")
}

func boundedCopy(dst strview.Segment, src strview.View, op string) (strview.View, error) {
	done, err := prepare(dst, src)
	if err != nil {
		return strview.Invalid, err
	}
	if done {
		return strview.Empty, nil
	}
	if src.Len() > dst.Len() {
		return strview.Invalid, shortBuffer(op, src.Len(), dst.Len())
	}

	return dst.Copy(src), nil
}
