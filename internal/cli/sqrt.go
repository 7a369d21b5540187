package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sqrtCmd represents the sqrt command
var sqrtCmd = &cobra.Command{
	Use:   "sqrt X",
	Short: "Floor square root of a 16-bit operand",
	Long:  `Compute the largest R with R*R <= X, deciding one of R's 8 bits per step.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSqrt,
}

func init() {
	rootCmd.AddCommand(sqrtCmd)
}

func runSqrt(cmd *cobra.Command, args []string) error {
	x, err := parseOperand(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tracer.Sqrt(x))
	return nil
}
