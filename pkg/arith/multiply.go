package arith

import "go.uber.org/zap"

const (
	// MaxOperand is the largest value an operand or result can hold.
	MaxOperand = 1<<16 - 1

	operandBits = 16
)

// Multiply returns x*y computed by shift-and-add.
//
// Each set bit i of y contributes x<<i. The loop stops as soon as the shifted
// multiplicand leaves the 16-bit range, so set bits of y above that point are
// never added. For every product that fits in 16 bits the result equals x*y.
// Larger products are truncated to 16 bits, and when the early stop discards
// high bits of y the result can also differ from uint16(x*y): Multiply(3,
// 0x8000) is 0. This mirrors fixed-width hardware and is kept on purpose.
func Multiply(x, y uint16) uint16 {
	return silent.Multiply(x, y)
}

// Multiply is the traced form of the package-level Multiply.
func (t *Tracer) Multiply(x, y uint16) uint16 {
	t.step("multiply",
		zap.Uint16("x", x), zap.Stringer("x_bits", binary(x)),
		zap.Uint16("y", y), zap.Stringer("y_bits", binary(y)))

	var sum uint32
	shiftedX := uint32(x)
	for i := 0; i < operandBits; i++ {
		if (y>>i)&1 == 1 {
			sum += shiftedX
			t.step("bit set, add shifted x",
				zap.Int("bit", i), zap.Uint32("shifted_x", shiftedX), zap.Uint32("sum", sum))
		} else {
			t.step("bit clear, skip", zap.Int("bit", i))
		}

		shiftedX <<= 1
		if shiftedX > MaxOperand {
			t.step("shifted x left the 16-bit range, stop",
				zap.Int("bit", i), zap.Uint32("shifted_x", shiftedX))
			break
		}
	}

	t.step("multiply result", zap.Uint16("result", uint16(sum)))
	return uint16(sum)
}
