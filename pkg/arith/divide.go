package arith

import "go.uber.org/zap"

// DivideRecursive returns ⌊x/y⌋ by recursing on a doubled divisor.
// It fails with KindDivisionByZero when y is 0.
func DivideRecursive(x, y uint16) (uint16, error) {
	return silent.DivideRecursive(x, y)
}

// DivideRecursive is the traced form of the package-level DivideRecursive.
func (t *Tracer) DivideRecursive(x, y uint16) (uint16, error) {
	if y == 0 {
		return 0, divisionByZero("divide_recursive", x)
	}
	q, _ := t.divideRecursive(uint32(x), uint32(y))
	t.step("divide_recursive result", zap.Uint32("result", q))
	return uint16(q), nil
}

// divideRecursive returns q = ⌊x/y⌋ and q*y. The second value lets the
// caller one level up read its 2qy term without multiplying: the quotient at
// divisor 2y times 2y is exactly that term.
//
// y never exceeds 2x on entry, so with x < 2^16 the divisor stays below 2^17.
func (t *Tracer) divideRecursive(x, y uint32) (q, qy uint32) {
	t.step("divide", zap.Uint32("x", x), zap.Uint32("y", y))
	if y > x {
		t.step("divisor exceeds dividend, return 0", zap.Uint32("x", x), zap.Uint32("y", y))
		return 0, 0
	}

	q, qy = t.divideRecursive(x, y<<1)
	remainder := x - qy
	t.step("returned",
		zap.Uint32("x", x), zap.Uint32("y", y), zap.Uint32("q", q), zap.Uint32("remainder", remainder))

	if remainder < y {
		t.step("remainder below divisor, quotient 2q",
			zap.Uint32("remainder", remainder), zap.Uint32("y", y), zap.Uint32("result", q<<1))
		return q << 1, qy
	}
	t.step("remainder covers divisor, quotient 2q+1",
		zap.Uint32("remainder", remainder), zap.Uint32("y", y), zap.Uint32("result", q<<1+1))
	return q<<1 + 1, qy + y
}

// DivideIterative returns ⌊x/y⌋ the way long division does: scale the divisor
// up by powers of two past x, then walk back down subtracting wherever it fits.
// It fails with KindDivisionByZero when y is 0.
func DivideIterative(x, y uint16) (uint16, error) {
	return silent.DivideIterative(x, y)
}

// DivideIterative is the traced form of the package-level DivideIterative.
func (t *Tracer) DivideIterative(x, y uint16) (uint16, error) {
	if y == 0 {
		return 0, divisionByZero("divide_iterative", x)
	}
	t.step("divide_iterative", zap.Uint16("x", x), zap.Uint16("y", y))

	rest := uint32(x)
	tempY := uint32(y)
	power := uint32(1)
	for tempY <= rest {
		tempY <<= 1
		power <<= 1
		t.step("scale divisor up", zap.Uint32("temp_y", tempY), zap.Uint32("power", power))
	}

	var quotient uint32
	for power > 1 {
		tempY >>= 1
		power >>= 1
		quotient <<= 1

		if tempY <= rest {
			rest -= tempY
			quotient++
			t.step("subtract scaled divisor",
				zap.Uint32("temp_y", tempY), zap.Uint32("rest", rest), zap.Uint32("power", power))
		} else {
			t.step("scaled divisor does not fit", zap.Uint32("temp_y", tempY), zap.Uint32("rest", rest))
		}
	}

	t.step("divide_iterative result", zap.Uint32("result", quotient), zap.Uint32("remainder", rest))
	return uint16(quotient), nil
}
