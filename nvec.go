package dpll

import "iter"

// NVec is a signed-index vector: a flat buffer addressed by a nonzero
// literal ℓ in [-n, n], backed by 2n+1 contiguous cells. Index 0 is
// invalid, as is any |ℓ| > n.
//
// The hot path (boolean constraint propagation) indexes by literal on
// every assign/unassign; a flat buffer with an additive offset keeps that
// lookup branch-free and cache-friendly.
type NVec[T any] struct {
	maxIndex int
	data     []T
}

// NewNVec allocates an NVec addressable by literals in [-maxIndex, maxIndex].
func NewNVec[T any](maxIndex int) *NVec[T] {
	return &NVec[T]{
		maxIndex: maxIndex,
		data:     make([]T, 2*maxIndex+1),
	}
}

// MaxIndex returns n, the half-length passed to NewNVec.
func (v *NVec[T]) MaxIndex() int {
	return v.maxIndex
}

func (v *NVec[T]) offset(lit int) int {
	if lit == 0 || abs(lit) > v.maxIndex {
		panic("dpll: NVec index out of range")
	}
	return v.maxIndex + lit
}

// Get returns the cell addressed by lit.
func (v *NVec[T]) Get(lit int) T {
	return v.data[v.offset(lit)]
}

// Set stores val in the cell addressed by lit.
func (v *NVec[T]) Set(lit int, val T) {
	v.data[v.offset(lit)] = val
}

// Positive iterates literals 1..=n in increasing order.
func (v *NVec[T]) Positive() iter.Seq[int] {
	return func(yield func(int) bool) {
		for lit := 1; lit <= v.maxIndex; lit++ {
			if !yield(lit) {
				return
			}
		}
	}
}

// Negative iterates literals -1..=-n in decreasing order.
func (v *NVec[T]) Negative() iter.Seq[int] {
	return func(yield func(int) bool) {
		for lit := -1; lit >= -v.maxIndex; lit-- {
			if !yield(lit) {
				return
			}
		}
	}
}

// Zipped iterates the pairs (ℓ, -ℓ) for ℓ in 1..=n.
func (v *NVec[T]) Zipped() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for lit := 1; lit <= v.maxIndex; lit++ {
			if !yield(lit, -lit) {
				return
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
