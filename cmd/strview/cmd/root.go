// Package cmd implements the strview command line tool, a thin shell over
// the strview library for inspecting, splitting and packing text.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the configuration resolved from
// them before any subcommand runs.
type rootOptions struct {
	cfgFile    string
	bufferSize int
	cfg        *Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "strview",
		Short: "Zero-copy text inspection tool",
		Long: `strview exposes the strview library on the command line.

Commands:
  split      - split text at the first delimiter byte
  find       - locate a substring
  slice      - take a clamped sub-range with negative indices
  trim       - strip bytes from both ends
  tokens     - list separator-delimited tokens
  hash       - print xxhash64 digests
  pack       - length-prefix strings into a fixed buffer
  unpack     - list the strings of a packed buffer
  compress   - compress a file into a framed record
  decompress - restore a framed record`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("buffer-size") {
				cfg.BufferSize = opts.bufferSize
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg

			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().IntVar(&opts.bufferSize, "buffer-size", DefaultBufferSize, "capacity of the output buffer in bytes")

	root.AddCommand(
		newSplitCmd(opts),
		newFindCmd(),
		newSliceCmd(),
		newTrimCmd(opts),
		newTokensCmd(opts),
		newHashCmd(),
		newPackCmd(opts),
		newUnpackCmd(),
		newCompressCmd(opts),
		newDecompressCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
