package arith

import "go.uber.org/zap"

// rootBits is the width of the square root of a 16-bit value.
const rootBits = 8

// Sqrt returns the floor square root of x: the largest r with r*r <= x.
//
// The root is built one bit at a time from bit 7 down, keeping a bit whenever
// the candidate's square still does not exceed x.
func Sqrt(x uint16) uint16 {
	return silent.Sqrt(x)
}

// Sqrt is the traced form of the package-level Sqrt.
func (t *Tracer) Sqrt(x uint16) uint16 {
	t.step("sqrt", zap.Uint16("x", x))

	var y uint32
	for j := rootBits - 1; j >= 0; j-- {
		candidate := y + 1<<uint(j)
		square := candidate * candidate

		if square <= uint32(x) {
			y = candidate
			t.step("keep bit",
				zap.Int("bit", j), zap.Uint32("candidate", candidate), zap.Uint32("square", square), zap.Uint32("y", y))
		} else {
			t.step("drop bit",
				zap.Int("bit", j), zap.Uint32("candidate", candidate), zap.Uint32("square", square))
		}
	}

	t.step("sqrt result", zap.Uint32("result", y))
	return uint16(y)
}
