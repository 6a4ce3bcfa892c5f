package compress

import (
	"fmt"

	"github.com/arloliu/strview/errs"
	"github.com/arloliu/strview/internal/options"
)

const (
	// DefaultZstdLevel matches the zstd command line default.
	DefaultZstdLevel = 3
	// MinZstdLevel and MaxZstdLevel bound WithLevel.
	MinZstdLevel = 1
	MaxZstdLevel = 22
)

// ZstdCompressor produces standard zstd frames.
type ZstdCompressor struct {
	level int
}

var _ Codec = (*ZstdCompressor)(nil)

// ZstdOption configures a ZstdCompressor.
type ZstdOption = options.Option[*ZstdCompressor]

// WithLevel sets the compression level, 1 (fastest) to 22 (smallest).
func WithLevel(level int) ZstdOption {
	return options.New(func(c *ZstdCompressor) error {
		if level < MinZstdLevel || level > MaxZstdLevel {
			return fmt.Errorf("zstd level %d outside [%d, %d]: %w",
				level, MinZstdLevel, MaxZstdLevel, errs.ErrInvalidCompressionLevel)
		}
		c.level = level

		return nil
	})
}

// NewZstdCompressor returns a zstd codec at DefaultZstdLevel unless an
// option overrides it.
func NewZstdCompressor(opts ...ZstdOption) (ZstdCompressor, error) {
	c := ZstdCompressor{level: DefaultZstdLevel}
	if err := options.Apply(&c, opts...); err != nil {
		return ZstdCompressor{}, err
	}

	return c, nil
}

// Level reports the configured compression level.
func (c ZstdCompressor) Level() int {
	if c.level == 0 {
		return DefaultZstdLevel
	}

	return c.level
}
