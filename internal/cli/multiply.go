package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// multiplyCmd represents the multiply command
var multiplyCmd = &cobra.Command{
	Use:   "multiply X Y",
	Short: "Multiply two 16-bit operands by shift-and-add",
	Long: `Multiply X by Y by adding X<<i for every set bit i of Y.

Products that do not fit in 16 bits are truncated. Set bits of Y beyond the
point where the shifted X leaves the 16-bit range are not added.`,
	Args: cobra.ExactArgs(2),
	RunE: runMultiply,
}

func init() {
	rootCmd.AddCommand(multiplyCmd)
}

func runMultiply(cmd *cobra.Command, args []string) error {
	operands, err := parseOperands(args)
	if err != nil {
		return err
	}
	x, y := operands[0], operands[1]

	product := tracer.Multiply(x, y)
	if uint32(x)*uint32(y) > 0xFFFF {
		logger.Warn("Product does not fit in 16 bits, result is truncated",
			zap.Uint16("x", x), zap.Uint16("y", y), zap.Uint16("result", product))
	}

	fmt.Fprintln(cmd.OutOrStdout(), product)
	return nil
}
