// Package arith implements 16-bit unsigned multiplication, division and
// integer square root using only shifts, additions, subtractions and
// comparisons.
//
// Operands and results are uint16. Intermediate values that can leave the
// 16-bit range (a doubled divisor, a shifted multiplicand, a squared root
// candidate) are held in uint32 so they never wrap.
//
// The package-level functions are silent. A Tracer runs the same algorithms
// and narrates every step to a zap logger at debug level; tracing never
// changes a result.
package arith
