package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/libreseed/bitarith/internal/config"
)

// divideCmd represents the divide command
var divideCmd = &cobra.Command{
	Use:   "divide X Y",
	Short: "Divide two 16-bit operands without a divide instruction",
	Long: `Compute the floor of X / Y.

Methods:
  recursive   recurse on a doubled divisor, build the quotient bit by bit
  iterative   scale the divisor up past X, then subtract on the way down
  both        run both and fail if they disagree`,
	Args: cobra.ExactArgs(2),
	RunE: runDivide,
}

func init() {
	rootCmd.AddCommand(divideCmd)

	// No default here: the config default applies unless the flag is given.
	divideCmd.Flags().String("method", "", "divider to use (recursive, iterative, both)")
	_ = viper.BindPFlag("divide.method", divideCmd.Flags().Lookup("method"))
}

func runDivide(cmd *cobra.Command, args []string) error {
	operands, err := parseOperands(args)
	if err != nil {
		return err
	}
	x, y := operands[0], operands[1]

	out := cmd.OutOrStdout()
	switch cfg.Divide.Method {
	case config.MethodRecursive:
		q, err := tracer.DivideRecursive(x, y)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, q)
	case config.MethodIterative:
		q, err := tracer.DivideIterative(x, y)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, q)
	case config.MethodBoth:
		r, err := tracer.DivideRecursive(x, y)
		if err != nil {
			return err
		}
		i, err := tracer.DivideIterative(x, y)
		if err != nil {
			return err
		}
		if r != i {
			logger.Error("Dividers disagree",
				zap.Uint16("x", x), zap.Uint16("y", y),
				zap.Uint16("recursive", r), zap.Uint16("iterative", i))
			return fmt.Errorf("%w: %d / %d", errDividersDisagree, x, y)
		}
		fmt.Fprintf(out, "recursive: %d\n", r)
		fmt.Fprintf(out, "iterative: %d\n", i)
	default:
		return errUnknownMethod
	}
	return nil
}

