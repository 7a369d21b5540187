package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/libreseed/bitarith/pkg/arith"
)

var (
	// Version information - set at build time
	Version   = "0.1.0"
	GitCommit = "dev"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and operand range",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "bitarith %s (%s, %s)\n", Version, GitCommit, runtime.Version())
		fmt.Fprintf(out, "  Operands:   unsigned 16-bit, 0..%d\n", arith.MaxOperand)
		fmt.Fprintf(out, "  Multiply:   shift-and-add\n")
		fmt.Fprintf(out, "  Divide:     %s, %s\n", "recursive", "iterative")
		fmt.Fprintf(out, "  Sqrt:       bit-by-bit, 8 steps\n")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
