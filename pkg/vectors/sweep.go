package vectors

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/libreseed/bitarith/pkg/arith"
)

// multiplyBlock is the number of multiplicands checked by one sweep task.
const multiplyBlock = 256

// SweepOptions configures Sweep.
type SweepOptions struct {
	// Workers bounds the number of concurrent sweep tasks
	Workers int

	// DivisorStride is the step between checked divisors (1 = every divisor)
	DivisorStride int

	// DividendStride is the step between checked dividends (1 = every dividend)
	DividendStride int

	// Logger receives progress entries; nil disables logging
	Logger *zap.Logger
}

// DefaultSweepOptions returns options that finish in a few seconds.
func DefaultSweepOptions() SweepOptions {
	return SweepOptions{
		Workers:        4,
		DivisorStride:  7,
		DividendStride: 97,
	}
}

// Validate checks the options.
func (o SweepOptions) Validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if o.DivisorStride < 1 || o.DivisorStride > arith.MaxOperand {
		return fmt.Errorf("divisor stride must be between 1 and %d", arith.MaxOperand)
	}
	if o.DividendStride < 1 || o.DividendStride > arith.MaxOperand {
		return fmt.Errorf("dividend stride must be between 1 and %d", arith.MaxOperand)
	}
	return nil
}

// MismatchError reports a primitive disagreeing with native arithmetic.
type MismatchError struct {
	Op   string
	Args []uint16
	Got  uint32
	Want uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s%v = %d, want %d", e.Op, e.Args, e.Got, e.Want)
}

// Sweep compares the primitives with native Go arithmetic: Sqrt over every
// operand, Multiply over every product that fits in 16 bits, and both
// dividers over a strided grid of dividends and divisors that always includes
// the 0, 1 and 65535 edges. The first mismatch cancels the remaining work and
// is returned as a *MismatchError.
func Sweep(ctx context.Context, opts SweepOptions) (*Tally, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Starting domain sweep",
		zap.Int("workers", opts.Workers),
		zap.Int("divisor_stride", opts.DivisorStride),
		zap.Int("dividend_stride", opts.DividendStride),
	)

	tally := NewTally()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	g.Go(func() error { return sweepSqrt(ctx, tally) })
	g.Go(func() error { return sweepDivisionByZero(ctx, tally) })

	for lo := uint32(0); lo <= arith.MaxOperand; lo += multiplyBlock {
		g.Go(func() error { return sweepMultiply(ctx, tally, lo, lo+multiplyBlock-1) })
	}

	dividends := sweepDividends(uint32(opts.DividendStride))
	for _, y := range strided(1, uint32(opts.DivisorStride)) {
		g.Go(func() error { return sweepDivide(ctx, tally, y, dividends) })
	}

	if err := g.Wait(); err != nil {
		var mismatch *MismatchError
		if errors.As(err, &mismatch) {
			logger.Error("Domain sweep found a mismatch", zap.Error(err))
		} else {
			logger.Warn("Domain sweep stopped", zap.Error(err))
		}
		return tally, err
	}

	logger.Info("Domain sweep complete",
		zap.Int64("checks", tally.Total()),
		zap.Duration("elapsed", tally.Elapsed()),
	)
	return tally, nil
}

// strided returns start, start+stride, ... up to MaxOperand, always ending
// with MaxOperand.
func strided(start, stride uint32) []uint32 {
	var values []uint32
	for v := start; v <= arith.MaxOperand; v += stride {
		values = append(values, v)
	}
	if values[len(values)-1] != arith.MaxOperand {
		values = append(values, arith.MaxOperand)
	}
	return values
}

// sweepDividends returns the strided dividends plus 1, which a stride above
// one would otherwise skip.
func sweepDividends(stride uint32) []uint32 {
	dividends := strided(0, stride)
	if stride > 1 {
		dividends = append(dividends, 1)
	}
	return dividends
}

func sweepSqrt(ctx context.Context, tally *Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for x := uint32(0); x <= arith.MaxOperand; x++ {
		r := uint32(arith.Sqrt(uint16(x)))
		if r*r > x || (r+1)*(r+1) <= x {
			return &MismatchError{Op: "sqrt", Args: []uint16{uint16(x)}, Got: r, Want: floorSqrt(x)}
		}
	}
	tally.Add("sqrt", arith.MaxOperand+1)
	return nil
}

// floorSqrt is the reference root, used only to report a mismatch.
func floorSqrt(x uint32) uint32 {
	r := uint32(0)
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

func sweepMultiply(ctx context.Context, tally *Tally, lo, hi uint32) error {
	var checked int64
	for x := lo; x <= hi; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		limit := uint32(arith.MaxOperand)
		if x > 0 {
			limit = arith.MaxOperand / x
		}
		for y := uint32(0); y <= limit; y++ {
			if got := uint32(arith.Multiply(uint16(x), uint16(y))); got != x*y {
				return &MismatchError{Op: "multiply", Args: []uint16{uint16(x), uint16(y)}, Got: got, Want: x * y}
			}
		}
		checked += int64(limit) + 1
	}
	tally.Add("multiply", checked)
	return nil
}

func sweepDivide(ctx context.Context, tally *Tally, y uint32, dividends []uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, x := range dividends {
		want := x / y
		r, err := arith.DivideRecursive(uint16(x), uint16(y))
		if err != nil {
			return fmt.Errorf("divide_recursive(%d, %d): %w", x, y, err)
		}
		if uint32(r) != want {
			return &MismatchError{Op: "divide_recursive", Args: []uint16{uint16(x), uint16(y)}, Got: uint32(r), Want: want}
		}
		i, err := arith.DivideIterative(uint16(x), uint16(y))
		if err != nil {
			return fmt.Errorf("divide_iterative(%d, %d): %w", x, y, err)
		}
		if uint32(i) != want {
			return &MismatchError{Op: "divide_iterative", Args: []uint16{uint16(x), uint16(y)}, Got: uint32(i), Want: want}
		}
	}
	tally.Add("divide_recursive", int64(len(dividends)))
	tally.Add("divide_iterative", int64(len(dividends)))
	return nil
}

func sweepDivisionByZero(ctx context.Context, tally *Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for x := uint32(0); x <= arith.MaxOperand; x++ {
		if _, err := arith.DivideRecursive(uint16(x), 0); !errors.Is(err, arith.ErrDivisionByZero) {
			return fmt.Errorf("divide_recursive(%d, 0): expected division by zero, got %v", x, err)
		}
		if _, err := arith.DivideIterative(uint16(x), 0); !errors.Is(err, arith.ErrDivisionByZero) {
			return fmt.Errorf("divide_iterative(%d, 0): expected division by zero, got %v", x, err)
		}
	}
	tally.Add("division_by_zero", 2*(arith.MaxOperand+1))
	return nil
}
