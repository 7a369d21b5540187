// Package vectors checks the arithmetic primitives against known input/output
// pairs loaded from YAML, and against native Go arithmetic across the operand
// domain.
package vectors

import (
	"fmt"
	"strconv"

	"github.com/libreseed/bitarith/pkg/arith"
)

// Suite is a named collection of known cases, one list per operation.
// Every divide case is checked against both dividers.
type Suite struct {
	// Name identifies the suite in reports (e.g., "known")
	Name string `yaml:"name"`

	Multiply []BinaryCase `yaml:"multiply"`
	Divide   []BinaryCase `yaml:"divide"`
	Sqrt     []UnaryCase  `yaml:"sqrt"`
}

// BinaryCase is a two-operand case. Operands are kept wide so that files can
// describe out-of-range inputs that must fail with INVALID_ARGUMENT.
type BinaryCase struct {
	X     int64           `yaml:"x"`
	Y     int64           `yaml:"y"`
	Want  *int64          `yaml:"want,omitempty"`
	Error arith.ErrorKind `yaml:"error,omitempty"`
}

// UnaryCase is a single-operand case.
type UnaryCase struct {
	X     int64           `yaml:"x"`
	Want  *int64          `yaml:"want,omitempty"`
	Error arith.ErrorKind `yaml:"error,omitempty"`
}

// Validate checks that the suite is well formed.
func (s *Suite) Validate() error {
	if len(s.Multiply)+len(s.Divide)+len(s.Sqrt) == 0 {
		return fmt.Errorf("suite %q: no cases", s.Name)
	}
	for i, c := range s.Multiply {
		if err := validateExpectation(c.Want, c.Error, false); err != nil {
			return fmt.Errorf("multiply[%d]: %w", i, err)
		}
	}
	for i, c := range s.Divide {
		if err := validateExpectation(c.Want, c.Error, true); err != nil {
			return fmt.Errorf("divide[%d]: %w", i, err)
		}
		if c.Error == arith.KindDivisionByZero && c.Y != 0 {
			return fmt.Errorf("divide[%d]: DIVISION_BY_ZERO expected with non-zero divisor %d", i, c.Y)
		}
	}
	for i, c := range s.Sqrt {
		if err := validateExpectation(c.Want, c.Error, false); err != nil {
			return fmt.Errorf("sqrt[%d]: %w", i, err)
		}
	}
	return nil
}

func validateExpectation(want *int64, kind arith.ErrorKind, canDivideByZero bool) error {
	switch {
	case want == nil && kind == "":
		return fmt.Errorf("one of want or error is required")
	case want != nil && kind != "":
		return fmt.Errorf("want and error are mutually exclusive")
	case want != nil:
		if _, err := arith.ToOperand(*want); err != nil {
			return fmt.Errorf("want: %w", err)
		}
	case kind == arith.KindInvalidArgument:
	case kind == arith.KindDivisionByZero && canDivideByZero:
	default:
		return fmt.Errorf("unexpected error kind %q", kind)
	}
	return nil
}

// outcome is either a result value or an error kind.
type outcome struct {
	value uint16
	kind  arith.ErrorKind
}

func expected(want *int64, kind arith.ErrorKind) outcome {
	if kind != "" {
		return outcome{kind: kind}
	}
	return outcome{value: uint16(*want)}
}

func observed(value uint16, err error) outcome {
	if err != nil {
		kind := arith.KindOf(err)
		if kind == "" {
			kind = arith.ErrorKind(err.Error())
		}
		return outcome{kind: kind}
	}
	return outcome{value: value}
}

func (o outcome) String() string {
	if o.kind != "" {
		return string(o.kind)
	}
	return strconv.Itoa(int(o.value))
}
