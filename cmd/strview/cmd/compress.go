package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/compress"
	"github.com/arloliu/strview/encoding"
	"github.com/arloliu/strview/format"
)

// A framed record is one byte of format.CompressionType, the original length
// as a uint32 in the configured byte order, then the compressed payload.
const frameHeaderLen = 1 + 4

func newCompressCmd(opts *rootOptions) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "compress <file|->",
		Short: "Compress a file into a framed record and report the ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if len(data) > opts.cfg.MaxRecordSize {
				return fmt.Errorf("input of %d bytes exceeds max_record_size %d", len(data), opts.cfg.MaxRecordSize)
			}

			codec, t, err := opts.cfg.Codec()
			if err != nil {
				return err
			}

			buf := make([]byte, frameHeaderLen+compress.MaxCompressedLen(t, len(data)))
			origin := strview.NewSegment(buf)
			cursor := origin.AppendByte(byte(t))
			cursor, err = encoding.AppendUint32(cursor, opts.cfg.Engine(), uint32(len(data))) //nolint:gosec
			if err != nil {
				return err
			}

			payload, stats, err := compress.Measure(codec, t, cursor, strview.FromBytes(data))
			if err != nil {
				return fmt.Errorf("compress %s: %w", args[0], err)
			}
			cursor = cursor.Advance(payload.Len())

			printf(cmd, "algorithm:  %s\n", stats.Algorithm)
			printf(cmd, "original:   %d bytes\n", stats.OriginalSize)
			printf(cmd, "compressed: %d bytes\n", stats.CompressedSize)
			printf(cmd, "ratio:      %.3f\n", stats.CompressionRatio())
			printf(cmd, "savings:    %.1f%%\n", stats.SpaceSavings())

			if output == "" {
				return nil
			}

			return os.WriteFile(output, origin.Filled(cursor).Bytes(), 0o644)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write the framed record to this file")

	return c
}

func newDecompressCmd(opts *rootOptions) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "decompress <file|->",
		Short: "Restore a framed record written by compress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			record := strview.FromBytes(data)
			tag, ok := record.At(0)
			if !ok {
				return fmt.Errorf("%s: empty record", args[0])
			}
			codec, err := compress.GetCodec(format.CompressionType(tag))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			n, payload, ok := encoding.ReadUint32(record.Slice(1, strview.End), opts.cfg.Engine())
			if !ok {
				return fmt.Errorf("%s: truncated record header", args[0])
			}
			if uint64(n) > uint64(opts.cfg.MaxRecordSize) {
				return fmt.Errorf("%s: header claims %d bytes, max_record_size is %d", args[0], n, opts.cfg.MaxRecordSize)
			}

			out, err := codec.Decompress(strview.NewSegment(make([]byte, n)), payload)
			if err != nil {
				return fmt.Errorf("decompress %s: %w", args[0], err)
			}
			if out.Len() != int(n) {
				return fmt.Errorf("%s: header says %d bytes, payload holds %d", args[0], n, out.Len())
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out.Bytes())
				return err
			}

			return os.WriteFile(output, out.Bytes(), 0o644)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write the restored bytes to this file instead of stdout")

	return c
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}
