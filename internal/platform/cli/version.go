package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information (injected at build time via -ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			detailed, _ := cmd.Flags().GetBool("detailed")
			if !detailed {
				fmt.Fprintf(out, "hashcrack version %s\n", Version)
				return
			}
			fmt.Fprintf(out, `hashcrack Version Information:
  Version:    %s
  Git Commit: %s
  Build Date: %s
  Go Version: %s
  OS/Arch:    %s/%s
`, Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	versionCmd.Flags().BoolP("detailed", "d", false, "Show detailed version information")
	return versionCmd
}
