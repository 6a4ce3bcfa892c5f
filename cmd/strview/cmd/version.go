package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X".
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printf(cmd, "strview v%s\n", Version)
			printf(cmd, "  Git Commit: %s\n", GitCommit)
			printf(cmd, "  Build Date: %s\n", BuildDate)
			printf(cmd, "  Go Version: %s\n", runtime.Version())
			printf(cmd, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
