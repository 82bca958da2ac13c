package humanoid

import "math"

// Unbounded returns the open upper end of the final bucket in a table.
func Unbounded() float64 { return math.Inf(1) }

// bucket maps the half-open range [Lower, Upper) to a payload.
type bucket[T any] struct {
	Lower, Upper float64
	Value        T
}

func (b bucket[T]) contains(x float64) bool {
	return b.Lower <= x && x < b.Upper
}

// rangeTable is an ordered list of buckets. Lookups scan in declaration
// order and the first containing bucket wins, so buckets must be declared
// in ascending order.
type rangeTable[T any] []bucket[T]

// lookup returns the index of the first bucket containing x, or -1.
func (t rangeTable[T]) lookup(x float64) int {
	for i, b := range t {
		if b.contains(x) {
			return i
		}
	}
	return -1
}
