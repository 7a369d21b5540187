package cli

import (
	"fmt"
	"strconv"

	"github.com/libreseed/bitarith/pkg/arith"
)

// parseOperand parses a decimal, 0x hex, 0o octal or 0b binary operand and
// checks that it fits in 16 bits.
func parseOperand(s string) (uint16, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, arith.NewError(arith.KindInvalidArgument, "operand",
			fmt.Sprintf("%q is not an integer", s)).WithDetail("value", s)
	}
	return arith.ToOperand(v)
}

// parseOperands parses every argument with parseOperand.
func parseOperands(args []string) ([]uint16, error) {
	operands := make([]uint16, len(args))
	for i, arg := range args {
		v, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}
		operands[i] = v
	}
	return operands, nil
}
