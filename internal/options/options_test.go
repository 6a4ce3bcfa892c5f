package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	level int
	name  string
	calls []string
}

var errBadLevel = errors.New("level out of range")

func withLevel(level int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if level < 1 {
			return errBadLevel
		}
		c.level = level
		c.calls = append(c.calls, "level")

		return nil
	})
}

func withName(name string) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		c.name = name
		c.calls = append(c.calls, "name")

		return nil
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withName("zstd"), withLevel(9), withLevel(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.level)
		require.Equal(t, "zstd", cfg.name)
		require.Equal(t, []string{"name", "level", "level"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(5), withLevel(0), withName("never"))
		require.ErrorIs(t, err, errBadLevel)
		require.Equal(t, 5, cfg.level)
		require.Empty(t, cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{level: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.level)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, nil, withLevel(2), nil))
		require.Equal(t, 2, cfg.level)
	})
}

func TestNew_NonPointerTarget(t *testing.T) {
	var seen int
	opt := New(func(n int) error {
		seen = n
		return nil
	})

	require.NoError(t, opt.apply(42))
	require.Equal(t, 42, seen)
}
