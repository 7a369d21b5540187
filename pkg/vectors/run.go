package vectors

import (
	"fmt"

	"github.com/libreseed/bitarith/pkg/arith"
)

// Failure describes one case whose observed outcome differs from the file.
type Failure struct {
	Op   string
	Case string
	Want string
	Got  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s(%s): got %s, want %s", f.Op, f.Case, f.Got, f.Want)
}

// Report is the result of running a Suite.
type Report struct {
	Suite    string
	Passed   int
	Failures []Failure
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Total returns the number of checks performed.
func (r *Report) Total() int {
	return r.Passed + len(r.Failures)
}

func (r *Report) record(op, args string, want, got outcome) {
	if want == got {
		r.Passed++
		return
	}
	r.Failures = append(r.Failures, Failure{
		Op:   op,
		Case: args,
		Want: want.String(),
		Got:  got.String(),
	})
}

// Run checks every case in the suite through tracer. A nil tracer runs silently.
// Suites built in code are validated first, since a case without an
// expectation cannot be judged.
func (s *Suite) Run(tracer *arith.Tracer) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot run invalid suite: %w", err)
	}
	if tracer == nil {
		tracer = arith.NewTracer(nil)
	}
	report := &Report{Suite: s.Name}

	for _, c := range s.Multiply {
		want := expected(c.Want, c.Error)
		x, y, err := c.operands()
		if err != nil {
			report.record("multiply", c.args(), want, observed(0, err))
			continue
		}
		report.record("multiply", c.args(), want, observed(tracer.Multiply(x, y), nil))
	}

	dividers := []struct {
		op     string
		divide func(x, y uint16) (uint16, error)
	}{
		{op: "divide_recursive", divide: tracer.DivideRecursive},
		{op: "divide_iterative", divide: tracer.DivideIterative},
	}
	for _, c := range s.Divide {
		want := expected(c.Want, c.Error)
		x, y, err := c.operands()
		for _, d := range dividers {
			if err != nil {
				report.record(d.op, c.args(), want, observed(0, err))
				continue
			}
			report.record(d.op, c.args(), want, observed(d.divide(x, y)))
		}
	}

	for _, c := range s.Sqrt {
		want := expected(c.Want, c.Error)
		x, err := arith.ToOperand(c.X)
		if err != nil {
			report.record("sqrt", c.args(), want, observed(0, err))
			continue
		}
		report.record("sqrt", c.args(), want, observed(tracer.Sqrt(x), nil))
	}

	return report, nil
}

func (c BinaryCase) operands() (x, y uint16, err error) {
	if x, err = arith.ToOperand(c.X); err != nil {
		return 0, 0, err
	}
	if y, err = arith.ToOperand(c.Y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (c BinaryCase) args() string {
	return fmt.Sprintf("%d, %d", c.X, c.Y)
}

func (c UnaryCase) args() string {
	return fmt.Sprintf("%d", c.X)
}
