package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/internal/collision"
)

func newSplitCmd(opts *rootOptions) *cobra.Command {
	var delim string

	c := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text at the first delimiter byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := opts.cfg.Delimiter
			if cmd.Flags().Changed("delim") {
				d = delim
			}
			if len(d) != 1 {
				return fmt.Errorf("delimiter must be a single byte, got %q", d)
			}

			before, after := strview.FromString(args[0]).SplitAtByte(d[0])
			if before.IsNotFound() {
				printf(cmd, "not found\n")
				return nil
			}
			printf(cmd, "before: %q\nafter:  %q\n", before.String(), after.String())

			return nil
		},
	}
	c.Flags().StringVarP(&delim, "delim", "d", "", "delimiter byte, overrides the config")

	return c
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <text> <needle>",
		Short: "Print the offset of needle and the text from there on",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, needle := strview.FromString(args[0]), strview.FromString(args[1])

			i := text.Index(needle)
			if i < 0 {
				printf(cmd, "not found\n")
				return nil
			}
			printf(cmd, "offset: %d\nmatch:  %q\n", i, text.Find(needle).String())

			return nil
		},
	}
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <text> <start> <end>",
		Short: "Take a clamped sub-range; negative indices count from the end",
		Long: `Take text[start:end] with the same rules as View.Slice: negative indices
count from the end, out-of-range indices are clamped and "end" selects the
end of the text. Put -- before the arguments when start is negative:

  strview slice -- abcdefgh -2 end`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			end, err := parseIndex(args[2])
			if err != nil {
				return err
			}

			printf(cmd, "%q\n", strview.FromString(args[0]).Slice(start, end).String())

			return nil
		},
	}
}

func parseIndex(s string) (int, error) {
	if strings.EqualFold(s, "end") {
		return strview.End, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}

	return i, nil
}

func newTrimCmd(opts *rootOptions) *cobra.Command {
	var set string

	c := &cobra.Command{
		Use:   "trim <text>",
		Short: "Strip bytes from both ends of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.cfg.TrimSet
			if cmd.Flags().Changed("set") {
				s = set
			}

			printf(cmd, "%q\n", strview.FromString(args[0]).Trim(predicateFor(s)).String())

			return nil
		},
	}
	c.Flags().StringVar(&set, "set", "", "bytes to strip, overrides the config (default whitespace)")

	return c
}

func newTokensCmd(opts *rootOptions) *cobra.Command {
	var seps string

	c := &cobra.Command{
		Use:   "tokens <text>",
		Short: "List the non-empty tokens of text, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.cfg.Separators
			if cmd.Flags().Changed("sep") {
				s = seps
			}

			for tok := range strview.FromString(args[0]).Tokens(predicateFor(s)) {
				printf(cmd, "%s\n", tok)
			}

			return nil
		},
	}
	c.Flags().StringVar(&seps, "sep", "", "separator bytes, overrides the config (default whitespace)")

	return c
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <text>...",
		Short: "Print the xxhash64 digest of each argument",
		Long: `Print the xxhash64 digest of each argument. Repeated arguments are marked
as duplicates, and distinct arguments sharing a digest as collisions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker := collision.NewTracker()
			for _, arg := range args {
				h, outcome, err := tracker.Track(strview.FromString(arg))
				if err != nil {
					return err
				}
				if outcome == collision.Unique {
					printf(cmd, "%016x  %s\n", h, arg)
					continue
				}
				printf(cmd, "%016x  %s (%s)\n", h, arg, outcome)
			}
			if tracker.HasCollision() {
				return fmt.Errorf("%d hash collisions", tracker.Collisions())
			}

			return nil
		},
	}
}

func predicateFor(set string) strview.Predicate {
	if set == "" {
		return strview.IsSpace
	}

	return strview.ByteIn(set)
}
