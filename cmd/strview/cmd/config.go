package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/strview/compress"
	"github.com/arloliu/strview/endian"
	"github.com/arloliu/strview/format"
)

// Defaults applied to fields a config file leaves unset.
const (
	DefaultDelimiter   = "="
	DefaultBufferSize  = 4096
	DefaultCompression = "zstd"
	DefaultEndian      = "little"

	// DefaultMaxRecordSize bounds the original size of a framed record.
	DefaultMaxRecordSize = 64 << 20
)

// Config is the on-disk configuration of the tool.
type Config struct {
	// Delimiter is the single byte split uses.
	Delimiter string `toml:"delimiter" yaml:"delimiter"`
	// TrimSet lists the bytes trim strips. Empty means ASCII whitespace.
	TrimSet string `toml:"trim_set" yaml:"trim_set"`
	// Separators lists the bytes tokens splits on. Empty means ASCII whitespace.
	Separators string `toml:"separators" yaml:"separators"`
	// BufferSize is the capacity of the buffers pack writes into.
	BufferSize int `toml:"buffer_size" yaml:"buffer_size"`
	// Compression names the codec: none, zstd, s2 or lz4.
	Compression string `toml:"compression" yaml:"compression"`
	// ZstdLevel is used when Compression is zstd. Zero selects the default.
	ZstdLevel int `toml:"zstd_level" yaml:"zstd_level"`
	// Endian is the byte order of record headers: little, big or native.
	Endian string `toml:"endian" yaml:"endian"`
	// MaxRecordSize is the largest original size compress accepts and
	// decompress allocates for.
	MaxRecordSize int `toml:"max_record_size" yaml:"max_record_size"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig reads path and fills unset fields with defaults. The format
// follows the file extension; anything other than .yaml or .yml is TOML.
// An empty path returns DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.Compression == "" {
		c.Compression = DefaultCompression
	}
	if c.ZstdLevel == 0 {
		c.ZstdLevel = compress.DefaultZstdLevel
	}
	if c.Endian == "" {
		c.Endian = DefaultEndian
	}
	if c.MaxRecordSize == 0 {
		c.MaxRecordSize = DefaultMaxRecordSize
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if len(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single byte, got %q", c.Delimiter)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.MaxRecordSize <= 0 || uint64(c.MaxRecordSize) > math.MaxUint32 {
		return fmt.Errorf("max_record_size must be in [1, %d], got %d", uint64(math.MaxUint32), c.MaxRecordSize)
	}
	if _, err := c.CompressionType(); err != nil {
		return err
	}
	if _, err := compress.NewZstdCompressor(compress.WithLevel(c.ZstdLevel)); err != nil {
		return err
	}
	if _, err := endian.ByName(c.Endian); err != nil {
		return err
	}

	return nil
}

// CompressionType resolves the Compression name.
func (c *Config) CompressionType() (format.CompressionType, error) {
	t, ok := format.ParseCompressionType(c.Compression)
	if !ok {
		return 0, fmt.Errorf("unknown compression %q", c.Compression)
	}

	return t, nil
}

// Engine resolves the Endian name.
func (c *Config) Engine() endian.EndianEngine {
	engine, err := endian.ByName(c.Endian)
	if err != nil {
		return endian.GetLittleEndianEngine()
	}

	return engine
}

// Codec builds the configured codec.
func (c *Config) Codec() (compress.Codec, format.CompressionType, error) {
	t, err := c.CompressionType()
	if err != nil {
		return nil, 0, err
	}
	codec, err := compress.CreateCodec(t, "config", compress.WithLevel(c.ZstdLevel))
	if err != nil {
		return nil, 0, err
	}

	return codec, t, nil
}
