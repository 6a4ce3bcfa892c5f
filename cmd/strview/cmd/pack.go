package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/encoding"
)

func newPackCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <text>...",
		Short: "Length-prefix strings into a buffer and print it as hex",
		Long: `Write each argument as a varint length-prefixed record into a buffer of
--buffer-size bytes. Fails without output if the records do not fit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin := strview.NewSegment(make([]byte, opts.cfg.BufferSize))

			cursor := origin
			for _, arg := range args {
				var err error
				cursor, err = encoding.AppendVarString(cursor, strview.FromString(arg))
				if err != nil {
					return fmt.Errorf("pack %q: %w", arg, err)
				}
			}

			printf(cmd, "%s\n", hex.EncodeToString(origin.Filled(cursor).Bytes()))

			return nil
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "List the strings of a packed buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}

			rest := strview.FromBytes(data)
			for offset := 0; !rest.IsEmpty(); {
				str, next := encoding.ReadVarString(rest)
				if !str.IsValid() {
					return fmt.Errorf("malformed record at offset %d", offset)
				}
				printf(cmd, "%q\n", str.String())
				offset += rest.Len() - next.Len()
				rest = next
			}

			return nil
		},
	}
}
